package entity

import "time"

// User representa una identidad del sistema. Puede pertenecer a varias empresas
// y equipos vía las tablas de membresía; nunca se elimina físicamente.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
