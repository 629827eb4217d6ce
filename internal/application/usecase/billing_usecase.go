package usecase

import (
	"context"
	"net/http"

	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// SubscriptionSnapshot es lo único que consumimos del proveedor de facturación:
// identidad y estado de la suscripción. Se persiste tal cual en el equipo.
type SubscriptionSnapshot struct {
	CustomerID     string
	SubscriptionID string
	Status         string
}

// SubscriptionProvider es el puerto hacia el colaborador externo de facturación
// (tipo Stripe). El flujo de checkout/portal queda fuera: aquí solo se leen y
// cancelan suscripciones existentes.
type SubscriptionProvider interface {
	GetSubscription(ctx context.Context, subscriptionID string) (*SubscriptionSnapshot, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*SubscriptionSnapshot, error)
}

// BillingUseCase sincroniza y cancela el snapshot de suscripción de un equipo.
type BillingUseCase struct {
	gate     *authz.Gate
	teams    repository.TeamRepository
	provider SubscriptionProvider
}

// NewBillingUseCase construye el caso de uso. provider puede ser nil
// (facturación deshabilitada: las operaciones que lo requieren devuelven 503).
func NewBillingUseCase(gate *authz.Gate, teams repository.TeamRepository, provider SubscriptionProvider) *BillingUseCase {
	return &BillingUseCase{gate: gate, teams: teams, provider: provider}
}

// GetSubscription devuelve el snapshot persistido (sin llamar al proveedor).
func (uc *BillingUseCase) GetSubscription(userID, teamID string) (*dto.SubscriptionResponse, error) {
	grant, err := uc.gate.Authorize(authz.PermTeamRead, teamID, userID)
	if err != nil {
		return nil, err
	}
	return toSubscriptionResponse(grant.Team), nil
}

// SyncSubscription consulta al proveedor y persiste el estado que devuelva.
// Un equipo sin suscripción devuelve el snapshot actual sin llamada externa.
func (uc *BillingUseCase) SyncSubscription(ctx context.Context, userID, teamID string) (*dto.SubscriptionResponse, error) {
	grant, err := uc.gate.Authorize(authz.PermTeamUpdate, teamID, userID)
	if err != nil {
		return nil, err
	}
	team := grant.Team
	if team.StripeSubscriptionID == "" {
		return toSubscriptionResponse(team), nil
	}
	if uc.provider == nil {
		return nil, billingDisabled()
	}

	snap, err := uc.provider.GetSubscription(ctx, team.StripeSubscriptionID)
	if err != nil {
		return nil, err
	}
	return uc.persistSnapshot(team, snap)
}

// CancelSubscription cancela en el proveedor y persiste el estado resultante.
// Es el paso previo obligado para poder eliminar un equipo con suscripción vigente.
func (uc *BillingUseCase) CancelSubscription(ctx context.Context, userID, teamID string) (*dto.SubscriptionResponse, error) {
	grant, err := uc.gate.Authorize(authz.PermTeamUpdate, teamID, userID)
	if err != nil {
		return nil, err
	}
	team := grant.Team
	if team.StripeSubscriptionID == "" {
		return nil, domain.Validation("el equipo no tiene suscripción que cancelar")
	}
	if uc.provider == nil {
		return nil, billingDisabled()
	}

	snap, err := uc.provider.CancelSubscription(ctx, team.StripeSubscriptionID)
	if err != nil {
		return nil, err
	}
	return uc.persistSnapshot(team, snap)
}

func (uc *BillingUseCase) persistSnapshot(team *entity.Team, snap *SubscriptionSnapshot) (*dto.SubscriptionResponse, error) {
	if err := uc.teams.UpdateSubscription(team.ID, snap.CustomerID, snap.SubscriptionID, snap.Status); err != nil {
		return nil, err
	}
	team.StripeCustomerID = snap.CustomerID
	team.StripeSubscriptionID = snap.SubscriptionID
	team.StripeSubscriptionStatus = snap.Status
	return toSubscriptionResponse(team), nil
}

func billingDisabled() *domain.AppError {
	return domain.NewAppError(http.StatusServiceUnavailable, "BILLING_DISABLED", "facturación no configurada")
}

func toSubscriptionResponse(t *entity.Team) *dto.SubscriptionResponse {
	status := t.StripeSubscriptionStatus
	if status == "" {
		status = "none"
	}
	return &dto.SubscriptionResponse{
		TeamID:         t.ID,
		CustomerID:     t.StripeCustomerID,
		SubscriptionID: t.StripeSubscriptionID,
		Status:         status,
	}
}
