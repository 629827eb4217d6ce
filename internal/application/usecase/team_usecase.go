package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TeamUseCase orquesta los casos de uso de equipos: alta, edición atómica
// equipo+empresa, borrado bloqueado por suscripción y gestión de miembros con
// el invariante de último admin.
type TeamUseCase struct {
	gate           *authz.Gate
	teams          repository.TeamRepository
	members        repository.TeamMemberRepository
	companyMembers repository.CompanyMemberRepository
	teamTx         TeamTxRunner
	memberTx       MemberTxRunner
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(
	gate *authz.Gate,
	teams repository.TeamRepository,
	members repository.TeamMemberRepository,
	companyMembers repository.CompanyMemberRepository,
	teamTx TeamTxRunner,
	memberTx MemberTxRunner,
) *TeamUseCase {
	return &TeamUseCase{
		gate:           gate,
		teams:          teams,
		members:        members,
		companyMembers: companyMembers,
		teamTx:         teamTx,
		memberTx:       memberTx,
	}
}

// Create crea un equipo bajo la empresa del usuario. Requiere membresía de
// empresa activa; el creador queda como admin activo del equipo.
func (uc *TeamUseCase) Create(userID string, in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	if userID == "" {
		return nil, domain.Unauthenticated()
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name es obligatorio")
	}

	companyMember, err := uc.companyMembers.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if companyMember == nil {
		return nil, domain.Forbidden()
	}

	now := time.Now()
	team := &entity.Team{
		ID:        uuid.New().String(),
		CompanyID: &companyMember.CompanyID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.teams.Create(team); err != nil {
		return nil, err
	}
	admin := &entity.TeamMember{
		ID:        uuid.New().String(),
		TeamID:    team.ID,
		UserID:    userID,
		Role:      entity.TeamRoleAdmin,
		Status:    entity.MemberStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.members.Create(admin); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// GetByID obtiene un equipo (requiere lectura).
func (uc *TeamUseCase) GetByID(userID, teamID string) (*dto.TeamResponse, error) {
	grant, err := uc.gate.Authorize(authz.PermTeamRead, teamID, userID)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(grant.Team), nil
}

// ListByUser lista los equipos donde el usuario tiene membresía activa.
func (uc *TeamUseCase) ListByUser(userID string) (*dto.TeamListResponse, error) {
	if userID == "" {
		return nil, domain.Unauthenticated()
	}
	list, err := uc.teams.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TeamResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTeamResponse(t))
	}
	return &dto.TeamListResponse{Items: items}, nil
}

// Update cambia el nombre del equipo y, si viene, la etiqueta visible de la
// empresa, en una sola transacción: si la parte de equipo falla, el cambio de
// etiqueta cae con ella.
func (uc *TeamUseCase) Update(ctx context.Context, userID, teamID string, in dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	grant, err := uc.gate.Authorize(authz.PermTeamUpdate, teamID, userID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name es obligatorio")
	}

	team := grant.Team
	err = uc.teamTx.RunTeamUpdate(ctx, func(
		teamRepo repository.TeamRepository,
		companyRepo repository.CompanyRepository,
	) error {
		if err := teamRepo.UpdateName(team.ID, name); err != nil {
			return err
		}
		if in.CompanyDisplayLabel != "" && team.CompanyID != nil {
			return companyRepo.UpdateDisplayLabel(*team.CompanyID, in.CompanyDisplayLabel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	team.Name = name
	team.UpdatedAt = time.Now()
	return toTeamResponse(team), nil
}

// Delete elimina el equipo. Con suscripción en estado active/trialing/past_due
// la operación se rechaza con 409: la facturación se cancela primero.
func (uc *TeamUseCase) Delete(userID, teamID string) error {
	grant, err := uc.gate.Authorize(authz.PermTeamDelete, teamID, userID)
	if err != nil {
		return err
	}
	if grant.Team.HasBlockingSubscription() {
		return domain.Conflict(domain.CodeSubscriptionActive,
			"el equipo tiene una suscripción vigente; cancélela antes de eliminar")
	}
	deleted, err := uc.teams.Delete(teamID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.TeamNotFound()
	}
	return nil
}

// ListMembers lista las membresías del equipo.
func (uc *TeamUseCase) ListMembers(userID, teamID string) ([]dto.TeamMemberResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermTeamRead, teamID, userID); err != nil {
		return nil, err
	}
	list, err := uc.members.ListByTeam(teamID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMemberResponse(m))
	}
	return out, nil
}

// UpdateMemberRole cambia el rol de un miembro. El conteo de admins activos y
// la escritura van en la misma transacción con las filas bloqueadas: dos
// degradaciones concurrentes no pueden dejar al equipo sin admin.
func (uc *TeamUseCase) UpdateMemberRole(ctx context.Context, userID, teamID, memberID, role string) error {
	switch role {
	case entity.TeamRoleAdmin, entity.TeamRoleOperator, entity.TeamRoleViewer:
	default:
		return domain.Validation("rol de equipo desconocido: " + role)
	}
	if _, err := uc.gate.Authorize(authz.PermMemberManage, teamID, userID); err != nil {
		return err
	}

	return uc.memberTx.RunMembers(ctx, func(memberRepo repository.TeamMemberRepository) error {
		members, err := memberRepo.LockByTeam(teamID)
		if err != nil {
			return err
		}
		target := findMember(members, memberID)
		if target == nil {
			return domain.TeamMemberNotFound()
		}
		if target.Role == entity.TeamRoleAdmin && role != entity.TeamRoleAdmin {
			if err := authz.CheckLastAdmin(members, target); err != nil {
				return err
			}
		}
		return memberRepo.UpdateRole(target.ID, role)
	})
}

// RemoveMember elimina una membresía, con el mismo invariante de último admin.
func (uc *TeamUseCase) RemoveMember(ctx context.Context, userID, teamID, memberID string) error {
	if _, err := uc.gate.Authorize(authz.PermMemberManage, teamID, userID); err != nil {
		return err
	}

	return uc.memberTx.RunMembers(ctx, func(memberRepo repository.TeamMemberRepository) error {
		members, err := memberRepo.LockByTeam(teamID)
		if err != nil {
			return err
		}
		target := findMember(members, memberID)
		if target == nil {
			return domain.TeamMemberNotFound()
		}
		if err := authz.CheckLastAdmin(members, target); err != nil {
			return err
		}
		_, err = memberRepo.Delete(target.ID)
		return err
	})
}

func findMember(members []*entity.TeamMember, id string) *entity.TeamMember {
	for _, m := range members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func toTeamResponse(t *entity.Team) *dto.TeamResponse {
	if t == nil {
		return nil
	}
	return &dto.TeamResponse{
		ID:                 t.ID,
		CompanyID:          t.CompanyID,
		Name:               t.Name,
		SubscriptionStatus: t.StripeSubscriptionStatus,
		CreatedAt:          dto.ISOTime(t.CreatedAt),
		UpdatedAt:          dto.ISOTime(t.UpdatedAt),
	}
}

func toMemberResponse(m *entity.TeamMember) dto.TeamMemberResponse {
	return dto.TeamMemberResponse{
		ID:        m.ID,
		TeamID:    m.TeamID,
		UserID:    m.UserID,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: dto.ISOTime(m.CreatedAt),
		UpdatedAt: dto.ISOTime(m.UpdatedAt),
	}
}
