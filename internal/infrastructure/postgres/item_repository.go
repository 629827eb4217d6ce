package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implementación PostgreSQL del repositorio de artículos.
type ItemRepository struct {
	q Querier
}

// NewItemRepository crea el repositorio sobre un pool o una transacción.
func NewItemRepository(q Querier) *ItemRepository {
	return &ItemRepository{q: q}
}

const itemColumns = `id, team_id, location_id, name, sku, barcode,
	initial_quantity, current_stock, created_at, updated_at`

func (r *ItemRepository) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, team_id, location_id, name, sku, barcode,
			initial_quantity, current_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TeamID, item.LocationID, item.Name, item.SKU, item.Barcode,
		item.InitialQuantity, item.CurrentStock, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar artículo: %w", err)
	}
	return nil
}

func (r *ItemRepository) GetByID(id, teamID string) (*entity.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = $1 AND team_id = $2`, itemColumns)
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, teamID))
}

// GetForUpdate bloquea la fila del artículo para serializar el
// read-modify-write del stock. Solo tiene efecto dentro de una transacción.
func (r *ItemRepository) GetForUpdate(id, teamID string) (*entity.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = $1 AND team_id = $2 FOR UPDATE`, itemColumns)
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, teamID))
}

func (r *ItemRepository) ListByTeam(teamID string, limit, offset int) ([]*entity.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM items
		WHERE team_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`, itemColumns)

	rows, err := r.q.Query(context.Background(), query, teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar artículos: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Item, 0)
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.TeamID, &i.LocationID, &i.Name, &i.SKU, &i.Barcode,
			&i.InitialQuantity, &i.CurrentStock, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("leer artículo: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// Update escribe los campos descriptivos. Deja fuera initial_quantity y
// current_stock a propósito: el stock derivado solo se toca vía UpdateStock.
func (r *ItemRepository) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET location_id = $3, name = $4, sku = $5, barcode = $6, updated_at = $7
		WHERE id = $1 AND team_id = $2`

	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TeamID, item.LocationID, item.Name, item.SKU, item.Barcode, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar artículo: %w", err)
	}
	return nil
}

// UpdateStock escribe el stock derivado y la ubicación. Reservado al motor de
// ledger, siempre dentro de la transacción que insertó la fila del movimiento.
func (r *ItemRepository) UpdateStock(id string, stock decimal.Decimal, locationID *string, updatedAt time.Time) error {
	query := `
		UPDATE items
		SET current_stock = $2, location_id = $3, updated_at = $4
		WHERE id = $1`

	_, err := r.q.Exec(context.Background(), query, id, stock, locationID, updatedAt)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	return nil
}

// Delete elimina el artículo y por FK en cascada sus transacciones.
// No revierte ningún efecto de stock: el ledger del artículo muere con él.
func (r *ItemRepository) Delete(id, teamID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM items WHERE id = $1 AND team_id = $2`, id, teamID)
	if err != nil {
		return false, fmt.Errorf("eliminar artículo: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ItemRepository) scanOne(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.TeamID, &i.LocationID, &i.Name, &i.SKU, &i.Barcode,
		&i.InitialQuantity, &i.CurrentStock, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer artículo: %w", err)
	}
	return &i, nil
}
