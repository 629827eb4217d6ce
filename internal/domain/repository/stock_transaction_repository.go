package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// StockTransactionRepository define el puerto para el ledger de stock.
// Las filas son inmutables: no existe Update.
type StockTransactionRepository interface {
	Create(transaction *entity.StockTransaction) error
	GetByID(id, teamID string) (*entity.StockTransaction, error)
	// Search lista transacciones del equipo con snapshots de artículo/usuario/ubicación,
	// filtrando por texto libre sobre nombre/SKU/código de barras del artículo,
	// email del usuario y nombre de ubicación. query llega ya normalizada (textutil.Fold).
	Search(teamID, query string, limit, offset int) ([]*entity.StockTransactionDetail, error)
	// Delete elimina la fila scoped a (id, teamID); devuelve false si no existía.
	// No recalcula el stock del artículo.
	Delete(id, teamID string) (bool, error)
}
