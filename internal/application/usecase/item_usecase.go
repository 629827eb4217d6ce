package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// ItemUseCase aplica reglas de negocio para artículos. Las ediciones nunca
// tocan CurrentStock: ese campo solo lo escribe el motor de ledger.
type ItemUseCase struct {
	gate      *authz.Gate
	items     repository.ItemRepository
	locations repository.LocationRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(gate *authz.Gate, items repository.ItemRepository, locations repository.LocationRepository) *ItemUseCase {
	return &ItemUseCase{gate: gate, items: items, locations: locations}
}

// Create crea un artículo; CurrentStock arranca en InitialQuantity.
func (uc *ItemUseCase) Create(userID, teamID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermStockWrite, teamID, userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name es obligatorio")
	}
	if in.InitialQuantity.IsNegative() {
		return nil, domain.Validation("initialQuantity no puede ser negativa")
	}
	if err := uc.checkLocation(teamID, in.LocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		TeamID:          teamID,
		LocationID:      in.LocationID,
		Name:            name,
		SKU:             strings.TrimSpace(in.SKU),
		Barcode:         strings.TrimSpace(in.Barcode),
		InitialQuantity: in.InitialQuantity,
		CurrentStock:    in.InitialQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo del equipo.
func (uc *ItemUseCase) GetByID(userID, teamID, itemID string) (*dto.ItemResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermTeamRead, teamID, userID); err != nil {
		return nil, err
	}
	item, err := uc.items.GetByID(itemID, teamID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ItemNotFound()
	}
	return toItemResponse(item), nil
}

// List lista los artículos del equipo con paginación.
func (uc *ItemUseCase) List(userID, teamID string, page dto.PageRequest) (*dto.ItemListResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermTeamRead, teamID, userID); err != nil {
		return nil, err
	}
	page.DefaultPage()

	list, err := uc.items.ListByTeam(teamID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita nombre/SKU/código de barras/ubicación. Los campos de stock no
// participan: un rename jamás toca CurrentStock.
func (uc *ItemUseCase) Update(userID, teamID, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermStockWrite, teamID, userID); err != nil {
		return nil, err
	}
	item, err := uc.items.GetByID(itemID, teamID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ItemNotFound()
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name es obligatorio")
	}
	if err := uc.checkLocation(teamID, in.LocationID); err != nil {
		return nil, err
	}

	item.Name = name
	item.SKU = strings.TrimSpace(in.SKU)
	item.Barcode = strings.TrimSpace(in.Barcode)
	item.LocationID = in.LocationID
	item.UpdatedAt = time.Now()
	if err := uc.items.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo del equipo.
func (uc *ItemUseCase) Delete(userID, teamID, itemID string) error {
	if _, err := uc.gate.Authorize(authz.PermStockWrite, teamID, userID); err != nil {
		return err
	}
	deleted, err := uc.items.Delete(itemID, teamID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ItemNotFound()
	}
	return nil
}

// checkLocation valida que la ubicación, si viene, exista y sea del equipo.
func (uc *ItemUseCase) checkLocation(teamID string, locationID *string) error {
	if locationID == nil {
		return nil
	}
	loc, err := uc.locations.GetByID(*locationID, teamID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.LocationNotFound()
	}
	return nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:              it.ID,
		TeamID:          it.TeamID,
		LocationID:      it.LocationID,
		Name:            it.Name,
		SKU:             it.SKU,
		Barcode:         it.Barcode,
		InitialQuantity: it.InitialQuantity,
		CurrentStock:    it.CurrentStock,
		CreatedAt:       dto.ISOTime(it.CreatedAt),
		UpdatedAt:       dto.ISOTime(it.UpdatedAt),
	}
}
