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

var _ repository.TeamRepository = (*TeamRepository)(nil)

// TeamRepository implementación PostgreSQL del repositorio de equipos.
type TeamRepository struct {
	q Querier
}

// NewTeamRepository crea el repositorio sobre un pool o una transacción.
func NewTeamRepository(q Querier) *TeamRepository {
	return &TeamRepository{q: q}
}

func (r *TeamRepository) Create(team *entity.Team) error {
	query := `
		INSERT INTO teams (id, company_id, name, stripe_customer_id, stripe_subscription_id,
			stripe_subscription_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.q.Exec(context.Background(), query,
		team.ID, team.CompanyID, team.Name,
		team.StripeCustomerID, team.StripeSubscriptionID, team.StripeSubscriptionStatus,
		team.CreatedAt, team.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar equipo: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByID(id string) (*entity.Team, error) {
	query := `
		SELECT id, company_id, name, stripe_customer_id, stripe_subscription_id,
			stripe_subscription_status, created_at, updated_at
		FROM teams WHERE id = $1`

	var t entity.Team
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.Name,
		&t.StripeCustomerID, &t.StripeSubscriptionID, &t.StripeSubscriptionStatus,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer equipo: %w", err)
	}
	return &t, nil
}

// ListByUser devuelve los equipos donde el usuario tiene membresía activa.
func (r *TeamRepository) ListByUser(userID string) ([]*entity.Team, error) {
	query := `
		SELECT t.id, t.company_id, t.name, t.stripe_customer_id, t.stripe_subscription_id,
			t.stripe_subscription_status, t.created_at, t.updated_at
		FROM teams t
		JOIN team_members m ON m.team_id = t.id
		WHERE m.user_id = $1 AND m.status = 'active'
		ORDER BY t.created_at ASC`

	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("listar equipos: %w", err)
	}
	defer rows.Close()

	teams := make([]*entity.Team, 0)
	for rows.Next() {
		var t entity.Team
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Name,
			&t.StripeCustomerID, &t.StripeSubscriptionID, &t.StripeSubscriptionStatus,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("leer equipo: %w", err)
		}
		teams = append(teams, &t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) UpdateName(id, name string) error {
	query := `UPDATE teams SET name = $2, updated_at = $3 WHERE id = $1`

	_, err := r.q.Exec(context.Background(), query, id, name, time.Now())
	if err != nil {
		return fmt.Errorf("actualizar nombre de equipo: %w", err)
	}
	return nil
}

func (r *TeamRepository) UpdateSubscription(id, customerID, subscriptionID, status string) error {
	query := `
		UPDATE teams
		SET stripe_customer_id = $2, stripe_subscription_id = $3,
			stripe_subscription_status = $4, updated_at = $5
		WHERE id = $1`

	_, err := r.q.Exec(context.Background(), query, id, customerID, subscriptionID, status, time.Now())
	if err != nil {
		return fmt.Errorf("actualizar suscripción de equipo: %w", err)
	}
	return nil
}

// Delete elimina el equipo y, por FK en cascada, sus membresías, ubicaciones,
// artículos y transacciones.
func (r *TeamRepository) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("eliminar equipo: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
