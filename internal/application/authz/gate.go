package authz

import (
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// Permission identifica una operación protegida sobre un equipo.
type Permission string

const (
	PermTeamRead     Permission = "team:read"
	PermStockWrite   Permission = "stock:write"
	PermTeamUpdate   Permission = "team:update"
	PermTeamDelete   Permission = "team:delete"
	PermMemberManage Permission = "member:manage"
)

// permissionRoles mapea cada permiso al conjunto de roles de equipo que lo tienen.
var permissionRoles = map[Permission]map[string]bool{
	PermTeamRead: {
		entity.TeamRoleAdmin:    true,
		entity.TeamRoleOperator: true,
		entity.TeamRoleViewer:   true,
	},
	PermStockWrite: {
		entity.TeamRoleAdmin:    true,
		entity.TeamRoleOperator: true,
	},
	PermTeamUpdate:   {entity.TeamRoleAdmin: true},
	PermTeamDelete:   {entity.TeamRoleAdmin: true},
	PermMemberManage: {entity.TeamRoleAdmin: true},
}

// Grant es el contexto que obtiene el caller cuando la autorización pasa:
// el equipo, el usuario y su rol en ese equipo.
type Grant struct {
	Team *entity.Team
	User *entity.User
	Role string
}

// Gate resuelve "¿puede el usuario U ejecutar el permiso P sobre el equipo T?".
// Lectura pura: no muta estado y llamadas repetidas con los mismos argumentos
// devuelven el mismo resultado.
type Gate struct {
	teams   repository.TeamRepository
	members repository.TeamMemberRepository
	users   repository.UserRepository
}

// NewGate construye la puerta de autorización.
func NewGate(
	teams repository.TeamRepository,
	members repository.TeamMemberRepository,
	users repository.UserRepository,
) *Gate {
	return &Gate{teams: teams, members: members, users: users}
}

// Authorize camina membresía y rol y devuelve el Grant o el AppError tipado:
// 401 sin identidad, 404 equipo inexistente, 403 sin membresía activa o rol insuficiente.
func (g *Gate) Authorize(permission Permission, teamID, userID string) (*Grant, error) {
	if userID == "" {
		return nil, domain.Unauthenticated()
	}

	team, err := g.teams.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.TeamNotFound()
	}

	member, err := g.members.GetByTeamAndUser(teamID, userID)
	if err != nil {
		return nil, err
	}
	// Una membresía suspendida cuenta como ninguna
	if member == nil || member.Status != entity.MemberStatusActive {
		return nil, domain.Forbidden()
	}

	allowed, known := permissionRoles[permission]
	if !known || !allowed[member.Role] {
		return nil, domain.Forbidden()
	}

	user, err := g.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token válido pero identidad ya no resoluble
		return nil, domain.Unauthenticated()
	}

	return &Grant{Team: team, User: user, Role: member.Role}, nil
}

// CheckLastAdmin aplica el invariante de último admin sobre el conjunto de
// membresías ya bloqueadas de un equipo: si target es el único admin activo y el
// cambio lo quitaría del rol, la operación se rechaza con 400.
// El caller debe haber obtenido members con LockByTeam dentro de la misma
// transacción que la escritura que protege.
func CheckLastAdmin(members []*entity.TeamMember, target *entity.TeamMember) error {
	if !target.IsActiveAdmin() {
		return nil
	}
	activeAdmins := 0
	for _, m := range members {
		if m.IsActiveAdmin() {
			activeAdmins++
		}
	}
	if activeAdmins <= 1 {
		return domain.LastAdmin()
	}
	return nil
}
