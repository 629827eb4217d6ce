package entity

import "time"

// Roles de membresía a nivel empresa.
const (
	CompanyRoleOwner  = "owner"
	CompanyRoleAdmin  = "admin"
	CompanyRoleMember = "member"
)

// Estados de membresía (empresa y equipo comparten el mismo vocabulario).
const (
	MemberStatusActive    = "active"
	MemberStatusSuspended = "suspended"
)

// Company representa el paraguas de facturación/propiedad (tenant raíz).
// DisplayLabel es la etiqueta visible derivada que algunos flujos de equipo actualizan.
type Company struct {
	ID           string
	Name         string
	DisplayLabel string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyMember representa la membresía de un usuario en una empresa.
// Independiente de la membresía por equipo.
type CompanyMember struct {
	ID        string
	CompanyID string
	UserID    string
	Role      string // owner, admin, member
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
