package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

// CompanyRepository implementación PostgreSQL del repositorio de empresas.
type CompanyRepository struct {
	q Querier
}

// NewCompanyRepository crea el repositorio sobre un pool o una transacción.
func NewCompanyRepository(q Querier) *CompanyRepository {
	return &CompanyRepository{q: q}
}

func (r *CompanyRepository) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, display_label, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.DisplayLabel, company.CreatedAt, company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar empresa: %w", err)
	}
	return nil
}

func (r *CompanyRepository) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, display_label, created_at, updated_at
		FROM companies WHERE id = $1`

	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&c.ID, &c.Name, &c.DisplayLabel, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer empresa: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) UpdateDisplayLabel(id, label string) error {
	query := `UPDATE companies SET display_label = $2, updated_at = $3 WHERE id = $1`

	_, err := r.q.Exec(context.Background(), query, id, label, time.Now())
	if err != nil {
		return fmt.Errorf("actualizar etiqueta de empresa: %w", err)
	}
	return nil
}
