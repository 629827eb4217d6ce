package ledger

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la inserción en el ledger y la
// actualización del stock del artículo se confirman o revierten como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.StockTransactionRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
