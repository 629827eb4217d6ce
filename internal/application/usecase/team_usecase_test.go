package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	teamID    = "team-1"
	adminID   = "user-admin"
	companyID = "company-1"
)

type fakeTeamRepo struct {
	teams        map[string]*entity.Team
	names        map[string]string
	failName     error
	deleteResult bool
}

func (r *fakeTeamRepo) Create(t *entity.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *fakeTeamRepo) GetByID(id string) (*entity.Team, error) {
	return r.teams[id], nil
}

func (r *fakeTeamRepo) ListByUser(string) ([]*entity.Team, error) {
	out := make([]*entity.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTeamRepo) UpdateName(id, name string) error {
	if r.failName != nil {
		return r.failName
	}
	r.names[id] = name
	return nil
}

func (r *fakeTeamRepo) UpdateSubscription(string, string, string, string) error { return nil }

func (r *fakeTeamRepo) Delete(id string) (bool, error) {
	if !r.deleteResult {
		return false, nil
	}
	delete(r.teams, id)
	return true, nil
}

type fakeCompanyRepo struct {
	labels    map[string]string
	failLabel error
}

func (r *fakeCompanyRepo) Create(*entity.Company) error            { return nil }
func (r *fakeCompanyRepo) GetByID(string) (*entity.Company, error) { return nil, nil }

func (r *fakeCompanyRepo) UpdateDisplayLabel(id, label string) error {
	if r.failLabel != nil {
		return r.failLabel
	}
	r.labels[id] = label
	return nil
}

type fakeMemberRepo struct {
	members map[string]*entity.TeamMember
}

func (r *fakeMemberRepo) Create(m *entity.TeamMember) error {
	r.members[m.ID] = m
	return nil
}

func (r *fakeMemberRepo) GetByTeamAndUser(team, user string) (*entity.TeamMember, error) {
	for _, m := range r.members {
		if m.TeamID == team && m.UserID == user {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMemberRepo) ListByTeam(team string) ([]*entity.TeamMember, error) {
	out := make([]*entity.TeamMember, 0)
	for _, m := range r.members {
		if m.TeamID == team {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMemberRepo) LockByTeam(team string) ([]*entity.TeamMember, error) {
	return r.ListByTeam(team)
}

func (r *fakeMemberRepo) UpdateRole(id, role string) error {
	if m, ok := r.members[id]; ok {
		m.Role = role
	}
	return nil
}

func (r *fakeMemberRepo) Delete(id string) (bool, error) {
	if _, ok := r.members[id]; !ok {
		return false, nil
	}
	delete(r.members, id)
	return true, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

type fakeCompanyMemberRepo struct {
	membership *entity.CompanyMember
}

func (r *fakeCompanyMemberRepo) Create(*entity.CompanyMember) error { return nil }
func (r *fakeCompanyMemberRepo) GetActiveByUser(string) (*entity.CompanyMember, error) {
	return r.membership, nil
}
func (r *fakeCompanyMemberRepo) GetByCompanyAndUser(string, string) (*entity.CompanyMember, error) {
	return r.membership, nil
}

// fakeTeamTx ejecuta el callback y descarta las escrituras si falla: el nombre
// del equipo solo se publica cuando la etiqueta también se escribió.
type fakeTeamTx struct {
	teams     *fakeTeamRepo
	companies *fakeCompanyRepo
}

func (tx *fakeTeamTx) RunTeamUpdate(_ context.Context, fn func(
	repository.TeamRepository, repository.CompanyRepository,
) error) error {
	stagedTeams := &fakeTeamRepo{
		teams:        tx.teams.teams,
		names:        cloneMap(tx.teams.names),
		failName:     tx.teams.failName,
		deleteResult: tx.teams.deleteResult,
	}
	stagedCompanies := &fakeCompanyRepo{
		labels:    cloneMap(tx.companies.labels),
		failLabel: tx.companies.failLabel,
	}
	if err := fn(stagedTeams, stagedCompanies); err != nil {
		return err
	}
	tx.teams.names = stagedTeams.names
	tx.companies.labels = stagedCompanies.labels
	return nil
}

type fakeMemberTx struct {
	members *fakeMemberRepo
}

func (tx *fakeMemberTx) RunMembers(_ context.Context, fn func(repository.TeamMemberRepository) error) error {
	return fn(tx.members)
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test
// ──────────────────────────────────────────────────────────────────────────────

type teamEnv struct {
	uc        *usecase.TeamUseCase
	teams     *fakeTeamRepo
	companies *fakeCompanyRepo
	members   *fakeMemberRepo
	company   *fakeCompanyMemberRepo
}

// newTeamEnv arma un equipo con un admin activo y el resto de fakes vacíos.
func newTeamEnv() *teamEnv {
	now := time.Now()
	cid := companyID
	teams := &fakeTeamRepo{
		teams: map[string]*entity.Team{
			teamID: {ID: teamID, CompanyID: &cid, Name: "Bodega Central", CreatedAt: now, UpdatedAt: now},
		},
		names:        map[string]string{},
		deleteResult: true,
	}
	companies := &fakeCompanyRepo{labels: map[string]string{}}
	members := &fakeMemberRepo{
		members: map[string]*entity.TeamMember{
			"member-admin": {
				ID: "member-admin", TeamID: teamID, UserID: adminID,
				Role: entity.TeamRoleAdmin, Status: entity.MemberStatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
		},
	}
	users := &fakeUserRepo{
		users: map[string]*entity.User{
			adminID: {ID: adminID, Email: "admin@example.com", Name: "Admin"},
		},
	}
	company := &fakeCompanyMemberRepo{
		membership: &entity.CompanyMember{
			ID: "cm-1", CompanyID: companyID, UserID: adminID,
			Role: entity.CompanyRoleOwner, Status: entity.MemberStatusActive,
		},
	}
	gate := authz.NewGate(teams, members, users)
	uc := usecase.NewTeamUseCase(gate, teams, members, company,
		&fakeTeamTx{teams: teams, companies: companies},
		&fakeMemberTx{members: members})
	return &teamEnv{uc: uc, teams: teams, companies: companies, members: members, company: company}
}

func (e *teamEnv) addMember(id, role string) {
	e.members.members[id] = &entity.TeamMember{
		ID: id, TeamID: teamID, UserID: "user-" + id,
		Role: role, Status: entity.MemberStatusActive,
	}
}

func requireAppError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok, "debe ser un error tipado de aplicación")
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, code, appErr.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Crear equipo requiere membresía de empresa activa.
func TestTeamCreate_SinEmpresaProhibido(t *testing.T) {
	env := newTeamEnv()
	env.company.membership = nil

	_, err := env.uc.Create(adminID, dto.CreateTeamRequest{Name: "Sucursal Norte"})
	requireAppError(t, err, http.StatusForbidden, domain.CodeForbidden)
}

// El creador queda como admin activo del nuevo equipo.
func TestTeamCreate_CreadorQuedaComoAdmin(t *testing.T) {
	env := newTeamEnv()

	team, err := env.uc.Create(adminID, dto.CreateTeamRequest{Name: "Sucursal Norte"})
	require.NoError(t, err)
	require.NotNil(t, team.CompanyID)
	assert.Equal(t, companyID, *team.CompanyID)

	member, err := env.members.GetByTeamAndUser(team.ID, adminID)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, entity.TeamRoleAdmin, member.Role)
	assert.Equal(t, entity.MemberStatusActive, member.Status)
}

func TestTeamCreate_NombreVacioRechazado(t *testing.T) {
	env := newTeamEnv()

	_, err := env.uc.Create(adminID, dto.CreateTeamRequest{Name: "   "})
	requireAppError(t, err, http.StatusBadRequest, domain.CodeValidation)
}

// Eliminar con suscripción vigente se rechaza con 409.
func TestTeamDelete_SuscripcionActivaBloquea(t *testing.T) {
	env := newTeamEnv()
	env.teams.teams[teamID].StripeSubscriptionStatus = entity.SubscriptionActive

	err := env.uc.Delete(adminID, teamID)
	requireAppError(t, err, http.StatusConflict, domain.CodeSubscriptionActive)
	assert.Contains(t, env.teams.teams, teamID, "el equipo debe seguir existiendo")
}

// Una suscripción cancelada ya no bloquea la eliminación.
func TestTeamDelete_SuscripcionCanceladaPermite(t *testing.T) {
	env := newTeamEnv()
	env.teams.teams[teamID].StripeSubscriptionStatus = entity.SubscriptionCanceled

	require.NoError(t, env.uc.Delete(adminID, teamID))
	assert.NotContains(t, env.teams.teams, teamID)
}

// Update escribe nombre del equipo y etiqueta de la empresa juntos.
func TestTeamUpdate_NombreYEtiquetaJuntos(t *testing.T) {
	env := newTeamEnv()

	team, err := env.uc.Update(context.Background(), adminID, teamID, dto.UpdateTeamRequest{
		Name:                "Bodega Sur",
		CompanyDisplayLabel: "ACME · Bodega Sur",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bodega Sur", team.Name)
	assert.Equal(t, "Bodega Sur", env.teams.names[teamID])
	assert.Equal(t, "ACME · Bodega Sur", env.companies.labels[companyID])
}

// Si la escritura de la etiqueta falla, el cambio de nombre cae con ella.
func TestTeamUpdate_FalloDeEtiquetaRevierteNombre(t *testing.T) {
	env := newTeamEnv()
	env.companies.failLabel = errors.New("conexión perdida")

	_, err := env.uc.Update(context.Background(), adminID, teamID, dto.UpdateTeamRequest{
		Name:                "Bodega Sur",
		CompanyDisplayLabel: "ACME · Bodega Sur",
	})
	require.Error(t, err)
	assert.Empty(t, env.teams.names[teamID], "el nombre no debe publicarse")
	assert.Empty(t, env.companies.labels[companyID])
}

// Degradar al único admin activo se rechaza.
func TestUpdateMemberRole_UltimoAdminNoSeDegrada(t *testing.T) {
	env := newTeamEnv()

	err := env.uc.UpdateMemberRole(context.Background(), adminID, teamID, "member-admin", entity.TeamRoleViewer)
	requireAppError(t, err, http.StatusBadRequest, domain.CodeLastAdmin)
	assert.Equal(t, entity.TeamRoleAdmin, env.members.members["member-admin"].Role)
}

// Con un segundo admin activo la degradación procede.
func TestUpdateMemberRole_ConOtroAdminSeDegrada(t *testing.T) {
	env := newTeamEnv()
	env.addMember("member-2", entity.TeamRoleAdmin)

	err := env.uc.UpdateMemberRole(context.Background(), adminID, teamID, "member-admin", entity.TeamRoleOperator)
	require.NoError(t, err)
	assert.Equal(t, entity.TeamRoleOperator, env.members.members["member-admin"].Role)
}

func TestUpdateMemberRole_RolDesconocidoRechazado(t *testing.T) {
	env := newTeamEnv()

	err := env.uc.UpdateMemberRole(context.Background(), adminID, teamID, "member-admin", "superuser")
	requireAppError(t, err, http.StatusBadRequest, domain.CodeValidation)
}

// Quitar al único admin activo se rechaza; quitar a un viewer procede.
func TestRemoveMember_UltimoAdminNoSale(t *testing.T) {
	env := newTeamEnv()

	err := env.uc.RemoveMember(context.Background(), adminID, teamID, "member-admin")
	requireAppError(t, err, http.StatusBadRequest, domain.CodeLastAdmin)
	assert.Contains(t, env.members.members, "member-admin")
}

func TestRemoveMember_ViewerSale(t *testing.T) {
	env := newTeamEnv()
	env.addMember("member-viewer", entity.TeamRoleViewer)

	require.NoError(t, env.uc.RemoveMember(context.Background(), adminID, teamID, "member-viewer"))
	assert.NotContains(t, env.members.members, "member-viewer")
}

func TestRemoveMember_InexistenteDevuelve404(t *testing.T) {
	env := newTeamEnv()

	err := env.uc.RemoveMember(context.Background(), adminID, teamID, "member-fantasma")
	requireAppError(t, err, http.StatusNotFound, domain.CodeTeamMemberNotFound)
}
