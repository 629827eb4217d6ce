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

var _ repository.TeamMemberRepository = (*TeamMemberRepository)(nil)

// TeamMemberRepository implementación PostgreSQL de membresías de equipo.
type TeamMemberRepository struct {
	q Querier
}

// NewTeamMemberRepository crea el repositorio sobre un pool o una transacción.
func NewTeamMemberRepository(q Querier) *TeamMemberRepository {
	return &TeamMemberRepository{q: q}
}

func (r *TeamMemberRepository) Create(member *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (id, team_id, user_id, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.TeamID, member.UserID, member.Role, member.Status,
		member.CreatedAt, member.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar membresía de equipo: %w", err)
	}
	return nil
}

func (r *TeamMemberRepository) GetByTeamAndUser(teamID, userID string) (*entity.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, role, status, created_at, updated_at
		FROM team_members
		WHERE team_id = $1 AND user_id = $2`

	var m entity.TeamMember
	err := r.q.QueryRow(context.Background(), query, teamID, userID).
		Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer membresía de equipo: %w", err)
	}
	return &m, nil
}

func (r *TeamMemberRepository) ListByTeam(teamID string) ([]*entity.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, role, status, created_at, updated_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY created_at ASC`

	return r.queryMany(query, teamID)
}

// LockByTeam bloquea todas las membresías del equipo (FOR UPDATE) para que el
// chequeo de último admin y la escritura posterior sean atómicos frente a
// operaciones concurrentes sobre el mismo equipo.
func (r *TeamMemberRepository) LockByTeam(teamID string) ([]*entity.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, role, status, created_at, updated_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY created_at ASC
		FOR UPDATE`

	return r.queryMany(query, teamID)
}

func (r *TeamMemberRepository) UpdateRole(id, role string) error {
	query := `UPDATE team_members SET role = $2, updated_at = $3 WHERE id = $1`

	_, err := r.q.Exec(context.Background(), query, id, role, time.Now())
	if err != nil {
		return fmt.Errorf("actualizar rol de membresía: %w", err)
	}
	return nil
}

func (r *TeamMemberRepository) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("eliminar membresía: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TeamMemberRepository) queryMany(query string, args ...any) ([]*entity.TeamMember, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar membresías: %w", err)
	}
	defer rows.Close()

	members := make([]*entity.TeamMember, 0)
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("leer membresía: %w", err)
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}
