package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.CompanyMemberRepository = (*CompanyMemberRepository)(nil)

// CompanyMemberRepository implementación PostgreSQL de membresías de empresa.
type CompanyMemberRepository struct {
	q Querier
}

// NewCompanyMemberRepository crea el repositorio sobre un pool o una transacción.
func NewCompanyMemberRepository(q Querier) *CompanyMemberRepository {
	return &CompanyMemberRepository{q: q}
}

func (r *CompanyMemberRepository) Create(member *entity.CompanyMember) error {
	query := `
		INSERT INTO company_members (id, company_id, user_id, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.CompanyID, member.UserID, member.Role, member.Status,
		member.CreatedAt, member.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar membresía de empresa: %w", err)
	}
	return nil
}

// GetActiveByUser devuelve la membresía activa más antigua del usuario.
// Un usuario con varias empresas opera bajo la primera a la que se unió.
func (r *CompanyMemberRepository) GetActiveByUser(userID string) (*entity.CompanyMember, error) {
	query := `
		SELECT id, company_id, user_id, role, status, created_at, updated_at
		FROM company_members
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at ASC
		LIMIT 1`

	return r.scanOne(r.q.QueryRow(context.Background(), query, userID))
}

func (r *CompanyMemberRepository) GetByCompanyAndUser(companyID, userID string) (*entity.CompanyMember, error) {
	query := `
		SELECT id, company_id, user_id, role, status, created_at, updated_at
		FROM company_members
		WHERE company_id = $1 AND user_id = $2`

	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, userID))
}

func (r *CompanyMemberRepository) scanOne(row pgx.Row) (*entity.CompanyMember, error) {
	var m entity.CompanyMember
	err := row.Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer membresía de empresa: %w", err)
	}
	return &m, nil
}
