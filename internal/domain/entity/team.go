package entity

import "time"

// Roles de membresía a nivel equipo. Invariante: todo equipo conserva
// siempre al menos un admin activo.
const (
	TeamRoleAdmin    = "admin"
	TeamRoleOperator = "operator"
	TeamRoleViewer   = "viewer"
)

// Estados de suscripción que bloquean la eliminación del equipo
// (requieren cancelar la facturación primero).
const (
	SubscriptionActive   = "active"
	SubscriptionTrialing = "trialing"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Team representa la unidad operativa: dueña de ubicaciones, artículos y
// transacciones de stock. CompanyID es opcional (equipos sin empresa).
type Team struct {
	ID                       string
	CompanyID                *string
	Name                     string
	StripeCustomerID         string
	StripeSubscriptionID     string
	StripeSubscriptionStatus string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// HasBlockingSubscription indica si el estado de suscripción impide eliminar el equipo.
func (t *Team) HasBlockingSubscription() bool {
	switch t.StripeSubscriptionStatus {
	case SubscriptionActive, SubscriptionTrialing, SubscriptionPastDue:
		return true
	}
	return false
}

// TeamMember representa la membresía de un usuario en un equipo, con rol propio
// independiente del rol de empresa.
type TeamMember struct {
	ID        string
	TeamID    string
	UserID    string
	Role      string // admin, operator, viewer
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActiveAdmin indica si la membresía cuenta para el invariante de último admin.
func (m *TeamMember) IsActiveAdmin() bool {
	return m.Role == TeamRoleAdmin && m.Status == MemberStatusActive
}
