package authz_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de lectura (el Gate es lectura pura)
// ──────────────────────────────────────────────────────────────────────────────

type fakeTeamRepo struct{ teams map[string]*entity.Team }

func (r *fakeTeamRepo) Create(*entity.Team) error                       { return nil }
func (r *fakeTeamRepo) ListByUser(string) ([]*entity.Team, error)       { return nil, nil }
func (r *fakeTeamRepo) UpdateName(string, string) error                 { return nil }
func (r *fakeTeamRepo) UpdateSubscription(_, _, _, _ string) error      { return nil }
func (r *fakeTeamRepo) Delete(string) (bool, error)                     { return false, nil }
func (r *fakeTeamRepo) GetByID(id string) (*entity.Team, error)         { return r.teams[id], nil }

type fakeMemberRepo struct{ members []*entity.TeamMember }

func (r *fakeMemberRepo) Create(*entity.TeamMember) error { return nil }
func (r *fakeMemberRepo) GetByTeamAndUser(teamID, userID string) (*entity.TeamMember, error) {
	for _, m := range r.members {
		if m.TeamID == teamID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeMemberRepo) ListByTeam(teamID string) ([]*entity.TeamMember, error) {
	var out []*entity.TeamMember
	for _, m := range r.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMemberRepo) LockByTeam(teamID string) ([]*entity.TeamMember, error) {
	return r.ListByTeam(teamID)
}
func (r *fakeMemberRepo) UpdateRole(string, string) error { return nil }
func (r *fakeMemberRepo) Delete(string) (bool, error)     { return false, nil }

type fakeUserRepo struct{ users map[string]*entity.User }

func (r *fakeUserRepo) Create(*entity.User) error                  { return nil }
func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) Update(*entity.User) error                  { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)    { return r.users[id], nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	teamID = "team-1"
	userID = "user-1"
)

func newGate(role, status string) *authz.Gate {
	teams := &fakeTeamRepo{teams: map[string]*entity.Team{
		teamID: {ID: teamID, Name: "Bodega Central"},
	}}
	var members []*entity.TeamMember
	if role != "" {
		members = append(members, &entity.TeamMember{
			ID: "m-1", TeamID: teamID, UserID: userID, Role: role, Status: status,
		})
	}
	users := &fakeUserRepo{users: map[string]*entity.User{
		userID: {ID: userID, Email: "ana@example.com"},
	}}
	return authz.NewGate(teams, &fakeMemberRepo{members: members}, users)
}

func assertDenied(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok, "la denegación debe ser un AppError tipado")
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, code, appErr.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_SinUsuarioRetorna401(t *testing.T) {
	g := newGate(entity.TeamRoleAdmin, entity.MemberStatusActive)
	_, err := g.Authorize(authz.PermTeamRead, teamID, "")
	assertDenied(t, err, http.StatusUnauthorized, domain.CodeUnauthenticated)
}

func TestAuthorize_EquipoInexistenteRetorna404(t *testing.T) {
	g := newGate(entity.TeamRoleAdmin, entity.MemberStatusActive)
	_, err := g.Authorize(authz.PermTeamRead, "no-existe", userID)
	assertDenied(t, err, http.StatusNotFound, domain.CodeTeamNotFound)
}

func TestAuthorize_SinMembresiaRetorna403(t *testing.T) {
	g := newGate("", "")
	_, err := g.Authorize(authz.PermTeamRead, teamID, userID)
	assertDenied(t, err, http.StatusForbidden, domain.CodeForbidden)
}

func TestAuthorize_MembresiaSuspendidaRetorna403(t *testing.T) {
	g := newGate(entity.TeamRoleAdmin, entity.MemberStatusSuspended)
	_, err := g.Authorize(authz.PermStockWrite, teamID, userID)
	assertDenied(t, err, http.StatusForbidden, domain.CodeForbidden)
}

// Matriz permiso × rol.
func TestAuthorize_MapaDePermisosPorRol(t *testing.T) {
	cases := []struct {
		role       string
		permission authz.Permission
		allowed    bool
	}{
		{entity.TeamRoleAdmin, authz.PermTeamRead, true},
		{entity.TeamRoleAdmin, authz.PermStockWrite, true},
		{entity.TeamRoleAdmin, authz.PermTeamUpdate, true},
		{entity.TeamRoleAdmin, authz.PermTeamDelete, true},
		{entity.TeamRoleAdmin, authz.PermMemberManage, true},
		{entity.TeamRoleOperator, authz.PermTeamRead, true},
		{entity.TeamRoleOperator, authz.PermStockWrite, true},
		{entity.TeamRoleOperator, authz.PermTeamUpdate, false},
		{entity.TeamRoleOperator, authz.PermTeamDelete, false},
		{entity.TeamRoleViewer, authz.PermTeamRead, true},
		{entity.TeamRoleViewer, authz.PermStockWrite, false},
		{entity.TeamRoleViewer, authz.PermMemberManage, false},
	}
	for _, tc := range cases {
		g := newGate(tc.role, entity.MemberStatusActive)
		grant, err := g.Authorize(tc.permission, teamID, userID)
		if tc.allowed {
			require.NoError(t, err, "%s debe tener %s", tc.role, tc.permission)
			require.NotNil(t, grant)
			assert.Equal(t, tc.role, grant.Role)
			assert.Equal(t, teamID, grant.Team.ID)
			assert.Equal(t, userID, grant.User.ID)
		} else {
			assertDenied(t, err, http.StatusForbidden, domain.CodeForbidden)
		}
	}
}

func TestAuthorize_PermisoDesconocidoRetorna403(t *testing.T) {
	g := newGate(entity.TeamRoleAdmin, entity.MemberStatusActive)
	_, err := g.Authorize(authz.Permission("stock:erase"), teamID, userID)
	assertDenied(t, err, http.StatusForbidden, domain.CodeForbidden)
}

// Autorización idempotente: dos llamadas idénticas, mismo resultado.
func TestAuthorize_Idempotente(t *testing.T) {
	g := newGate(entity.TeamRoleOperator, entity.MemberStatusActive)

	g1, err1 := g.Authorize(authz.PermStockWrite, teamID, userID)
	g2, err2 := g.Authorize(authz.PermStockWrite, teamID, userID)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, g1.Role, g2.Role)
	assert.Equal(t, g1.Team.ID, g2.Team.ID)
	assert.Equal(t, g1.User.ID, g2.User.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante de último admin
// ──────────────────────────────────────────────────────────────────────────────

func member(id, role, status string) *entity.TeamMember {
	return &entity.TeamMember{ID: id, TeamID: teamID, UserID: "u-" + id, Role: role, Status: status}
}

func TestCheckLastAdmin_UnicoAdminNoSePuedeQuitar(t *testing.T) {
	target := member("m-1", entity.TeamRoleAdmin, entity.MemberStatusActive)
	members := []*entity.TeamMember{
		target,
		member("m-2", entity.TeamRoleOperator, entity.MemberStatusActive),
	}

	err := authz.CheckLastAdmin(members, target)
	assertDenied(t, err, http.StatusBadRequest, domain.CodeLastAdmin)
}

func TestCheckLastAdmin_ConDosAdminsSePermite(t *testing.T) {
	target := member("m-1", entity.TeamRoleAdmin, entity.MemberStatusActive)
	members := []*entity.TeamMember{
		target,
		member("m-2", entity.TeamRoleAdmin, entity.MemberStatusActive),
	}

	assert.NoError(t, authz.CheckLastAdmin(members, target))
}

func TestCheckLastAdmin_AdminSuspendidoNoCuenta(t *testing.T) {
	target := member("m-1", entity.TeamRoleAdmin, entity.MemberStatusActive)
	members := []*entity.TeamMember{
		target,
		member("m-2", entity.TeamRoleAdmin, entity.MemberStatusSuspended),
	}

	err := authz.CheckLastAdmin(members, target)
	assertDenied(t, err, http.StatusBadRequest, domain.CodeLastAdmin)
}

func TestCheckLastAdmin_QuitarNoAdminSiemprePermitido(t *testing.T) {
	target := member("m-2", entity.TeamRoleViewer, entity.MemberStatusActive)
	members := []*entity.TeamMember{
		member("m-1", entity.TeamRoleAdmin, entity.MemberStatusActive),
		target,
	}

	assert.NoError(t, authz.CheckLastAdmin(members, target))
}
