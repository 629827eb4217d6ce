package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// LocationUseCase aplica reglas de negocio para ubicaciones (nombre único por equipo).
type LocationUseCase struct {
	gate      *authz.Gate
	locations repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(gate *authz.Gate, locations repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{gate: gate, locations: locations}
}

// Create crea una ubicación. Nombre duplicado en el equipo → 409.
func (uc *LocationUseCase) Create(userID, teamID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermTeamUpdate, teamID, userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name es obligatorio")
	}

	now := time.Now()
	loc := &entity.Location{
		ID:        uuid.New().String(),
		TeamID:    teamID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locations.Create(loc); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict(domain.CodeDuplicateName, "ya existe una ubicación con ese nombre en el equipo")
		}
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// List lista las ubicaciones del equipo.
func (uc *LocationUseCase) List(userID, teamID string) (*dto.LocationListResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermTeamRead, teamID, userID); err != nil {
		return nil, err
	}
	list, err := uc.locations.ListByTeam(teamID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items}, nil
}

// Update renombra una ubicación. Nombre duplicado → 409.
func (uc *LocationUseCase) Update(userID, teamID, locationID string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermTeamUpdate, teamID, userID); err != nil {
		return nil, err
	}
	loc, err := uc.locations.GetByID(locationID, teamID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.LocationNotFound()
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name es obligatorio")
	}

	loc.Name = name
	loc.UpdatedAt = time.Now()
	if err := uc.locations.Update(loc); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict(domain.CodeDuplicateName, "ya existe una ubicación con ese nombre en el equipo")
		}
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Delete elimina una ubicación del equipo.
func (uc *LocationUseCase) Delete(userID, teamID, locationID string) error {
	if _, err := uc.gate.Authorize(authz.PermTeamUpdate, teamID, userID); err != nil {
		return err
	}
	deleted, err := uc.locations.Delete(locationID, teamID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.LocationNotFound()
	}
	return nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		TeamID:    l.TeamID,
		Name:      l.Name,
		CreatedAt: dto.ISOTime(l.CreatedAt),
		UpdatedAt: dto.ISOTime(l.UpdatedAt),
	}
}
