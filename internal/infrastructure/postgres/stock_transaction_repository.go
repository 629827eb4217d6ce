package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepository)(nil)

// StockTransactionRepository implementación PostgreSQL del ledger de stock.
// Las filas son append-only: no hay UPDATE sobre esta tabla.
type StockTransactionRepository struct {
	q Querier
}

// NewStockTransactionRepository crea el repositorio sobre un pool o una transacción.
func NewStockTransactionRepository(q Querier) *StockTransactionRepository {
	return &StockTransactionRepository{q: q}
}

func (r *StockTransactionRepository) Create(transaction *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, item_id, team_id, transaction_type, quantity,
			user_id, source_location_id, destination_location_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.ItemID, transaction.TeamID,
		transaction.TransactionType, transaction.Quantity, transaction.UserID,
		transaction.SourceLocationID, transaction.DestinationLocationID,
		transaction.Notes, transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("insertar transacción: %w", err)
	}
	return nil
}

func (r *StockTransactionRepository) GetByID(id, teamID string) (*entity.StockTransaction, error) {
	query := `
		SELECT id, item_id, team_id, transaction_type, quantity, user_id,
			source_location_id, destination_location_id, notes, created_at
		FROM stock_transactions
		WHERE id = $1 AND team_id = $2`

	var t entity.StockTransaction
	err := r.q.QueryRow(context.Background(), query, id, teamID).Scan(
		&t.ID, &t.ItemID, &t.TeamID, &t.TransactionType, &t.Quantity, &t.UserID,
		&t.SourceLocationID, &t.DestinationLocationID, &t.Notes, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer transacción: %w", err)
	}
	return &t, nil
}

// Search lista las transacciones del equipo con snapshots para mostrar,
// más recientes primero. El filtro de texto cubre nombre/SKU/código de barras
// del artículo, email del usuario y nombres de ubicación; query llega ya
// plegada (minúsculas, sin tildes) y el ILIKE absorbe mayúsculas en la columna.
func (r *StockTransactionRepository) Search(teamID, query string, limit, offset int) ([]*entity.StockTransactionDetail, error) {
	sql := `
		SELECT t.id, t.item_id, t.team_id, t.transaction_type, t.quantity, t.user_id,
			t.source_location_id, t.destination_location_id, t.notes, t.created_at,
			i.name, i.sku, i.barcode, u.email, sl.name, dl.name
		FROM stock_transactions t
		JOIN items i ON i.id = t.item_id
		JOIN users u ON u.id = t.user_id
		LEFT JOIN locations sl ON sl.id = t.source_location_id
		LEFT JOIN locations dl ON dl.id = t.destination_location_id
		WHERE t.team_id = $1
			AND ($2 = ''
				OR i.name ILIKE '%' || $2 || '%'
				OR i.sku ILIKE '%' || $2 || '%'
				OR i.barcode ILIKE '%' || $2 || '%'
				OR u.email ILIKE '%' || $2 || '%'
				OR sl.name ILIKE '%' || $2 || '%'
				OR dl.name ILIKE '%' || $2 || '%')
		ORDER BY t.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.q.Query(context.Background(), sql, teamID, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("buscar transacciones: %w", err)
	}
	defer rows.Close()

	details := make([]*entity.StockTransactionDetail, 0)
	for rows.Next() {
		var d entity.StockTransactionDetail
		if err := rows.Scan(
			&d.ID, &d.ItemID, &d.TeamID, &d.TransactionType, &d.Quantity, &d.UserID,
			&d.SourceLocationID, &d.DestinationLocationID, &d.Notes, &d.CreatedAt,
			&d.ItemName, &d.ItemSKU, &d.ItemBarcode, &d.UserEmail,
			&d.SourceLocationName, &d.DestinationLocationName); err != nil {
			return nil, fmt.Errorf("leer transacción: %w", err)
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

// Delete elimina la fila del ledger sin recalcular el stock del artículo.
// El efecto del movimiento sobre current_stock queda como quedó.
func (r *StockTransactionRepository) Delete(id, teamID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_transactions WHERE id = $1 AND team_id = $2`, id, teamID)
	if err != nil {
		return false, fmt.Errorf("eliminar transacción: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
