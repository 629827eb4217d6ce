package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// Engine es la única vía autorizada para mutar Item.CurrentStock e Item.LocationID.
// Inserta la transacción en el ledger y recalcula el stock cacheado del artículo
// en una sola unidad atómica, con bloqueo de fila (SELECT FOR UPDATE).
type Engine struct {
	txRunner TxRunner
}

// NewEngine construye el motor de ledger.
func NewEngine(txRunner TxRunner) *Engine {
	return &Engine{txRunner: txRunner}
}

// Input entrada para aplicar una transacción de stock.
// Para stock_in/stock_out/move: Quantity > 0. Para adjust/count: Quantity es el
// nivel absoluto final (>= 0). Source/DestinationLocationID se registran siempre
// para auditoría; solo el destino afecta la ubicación del artículo.
type Input struct {
	ItemID                string
	TeamID                string
	Type                  string
	Quantity              decimal.Decimal
	UserID                string
	SourceLocationID      *string
	DestinationLocationID *string
	Notes                 string
}

// validate revisa la forma del payload antes de abrir la transacción.
func (in Input) validate() *domain.AppError {
	if in.ItemID == "" || in.TeamID == "" || in.UserID == "" {
		return domain.Validation("itemId, teamId y userId son obligatorios")
	}
	if !entity.ValidTransactionType(in.Type) {
		return domain.Validation("tipo de transacción desconocido: " + in.Type)
	}
	if entity.AbsoluteTransactionType(in.Type) {
		if in.Quantity.IsNegative() {
			return domain.Validation("quantity no puede ser negativa en adjust/count")
		}
		return nil
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.Validation("quantity debe ser mayor que cero")
	}
	return nil
}

// ApplyStockTransaction inserta la fila del ledger, bloquea el artículo y aplica
// la semántica del tipo, todo en una transacción: si la salida excede el stock
// actual la operación completa se revierte (ninguna fila huérfana sobrevive).
func (e *Engine) ApplyStockTransaction(ctx context.Context, in Input) (*entity.StockTransaction, error) {
	if appErr := in.validate(); appErr != nil {
		return nil, appErr
	}

	now := time.Now()
	txn := &entity.StockTransaction{
		ID:                    uuid.New().String(),
		ItemID:                in.ItemID,
		TeamID:                in.TeamID,
		TransactionType:       in.Type,
		Quantity:              in.Quantity,
		UserID:                in.UserID,
		SourceLocationID:      in.SourceLocationID,
		DestinationLocationID: in.DestinationLocationID,
		Notes:                 in.Notes,
		CreatedAt:             now,
	}

	err := e.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		itemRepo repository.ItemRepository,
	) error {
		// Insertar primero: la fila lleva su propia identidad y timestamp,
		// y cae con el rollback si la validación posterior rechaza la operación.
		if err := txnRepo.Create(txn); err != nil {
			return err
		}

		// Bloquea la fila del artículo para serializar el read-modify-write
		item, err := itemRepo.GetForUpdate(in.ItemID, in.TeamID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ItemNotFound()
		}

		newStock := item.CurrentStock
		newLocation := item.LocationID

		switch in.Type {
		case entity.TransactionStockIn:
			newStock = item.CurrentStock.Add(in.Quantity)
			if in.DestinationLocationID != nil {
				newLocation = in.DestinationLocationID
			}
		case entity.TransactionStockOut:
			// Rechazo de negocio, no clamp: nada queda escrito
			if in.Quantity.GreaterThan(item.CurrentStock) {
				return domain.InsufficientStock()
			}
			newStock = item.CurrentStock.Sub(in.Quantity)
		case entity.TransactionAdjust, entity.TransactionCount:
			newStock = in.Quantity
		case entity.TransactionMove:
			// El stock no cambia; solo la ubicación, y solo si hay destino
			if in.DestinationLocationID != nil {
				newLocation = in.DestinationLocationID
			}
		}

		// Piso en cero, aunque stock_out ya está guardado
		if newStock.IsNegative() {
			newStock = decimal.Zero
		}

		return itemRepo.UpdateStock(item.ID, newStock, newLocation, now)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}
