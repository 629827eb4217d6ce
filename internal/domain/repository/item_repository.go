package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para artículos.
// Update nunca toca CurrentStock ni InitialQuantity: la única vía de escritura
// del stock derivado es UpdateStock, reservada al motor de ledger.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id, teamID string) (*entity.Item, error)
	// GetForUpdate obtiene el artículo bloqueando su fila (SELECT ... FOR UPDATE)
	// para serializar el read-modify-write del stock. Solo dentro de una transacción.
	GetForUpdate(id, teamID string) (*entity.Item, error)
	ListByTeam(teamID string, limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	UpdateStock(id string, stock decimal.Decimal, locationID *string, updatedAt time.Time) error
	Delete(id, teamID string) (bool, error)
}
