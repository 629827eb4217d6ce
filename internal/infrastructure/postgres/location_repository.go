package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepository)(nil)

// LocationRepository implementación PostgreSQL del repositorio de ubicaciones.
// El constraint único (team_id, name) respalda la unicidad de nombre por equipo.
type LocationRepository struct {
	q Querier
}

// NewLocationRepository crea el repositorio sobre un pool o una transacción.
func NewLocationRepository(q Querier) *LocationRepository {
	return &LocationRepository{q: q}
}

func (r *LocationRepository) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, team_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.TeamID, location.Name, location.CreatedAt, location.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar ubicación: %w", err)
	}
	return nil
}

func (r *LocationRepository) GetByID(id, teamID string) (*entity.Location, error) {
	query := `
		SELECT id, team_id, name, created_at, updated_at
		FROM locations WHERE id = $1 AND team_id = $2`

	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id, teamID).
		Scan(&l.ID, &l.TeamID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer ubicación: %w", err)
	}
	return &l, nil
}

func (r *LocationRepository) ListByTeam(teamID string) ([]*entity.Location, error) {
	query := `
		SELECT id, team_id, name, created_at, updated_at
		FROM locations
		WHERE team_id = $1
		ORDER BY name ASC`

	rows, err := r.q.Query(context.Background(), query, teamID)
	if err != nil {
		return nil, fmt.Errorf("listar ubicaciones: %w", err)
	}
	defer rows.Close()

	locations := make([]*entity.Location, 0)
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.TeamID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("leer ubicación: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, rows.Err()
}

func (r *LocationRepository) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $3, updated_at = $4
		WHERE id = $1 AND team_id = $2`

	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.TeamID, location.Name, location.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar ubicación: %w", err)
	}
	return nil
}

func (r *LocationRepository) Delete(id, teamID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM locations WHERE id = $1 AND team_id = $2`, id, teamID)
	if err != nil {
		return false, fmt.Errorf("eliminar ubicación: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
