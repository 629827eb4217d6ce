package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// TeamMemberRepository define el puerto para membresías a nivel equipo.
// Las escrituras de rol/estado pasan por LockByTeam dentro de una transacción
// para serializar el chequeo de último admin.
type TeamMemberRepository interface {
	Create(member *entity.TeamMember) error
	GetByTeamAndUser(teamID, userID string) (*entity.TeamMember, error)
	ListByTeam(teamID string) ([]*entity.TeamMember, error)
	// LockByTeam devuelve todas las membresías del equipo bloqueando sus filas
	// (SELECT ... FOR UPDATE). Solo tiene sentido dentro de una transacción.
	LockByTeam(teamID string) ([]*entity.TeamMember, error)
	UpdateRole(id, role string) error
	// Delete elimina la membresía; devuelve false si no existía.
	Delete(id string) (bool, error)
}
