package entity

import "time"

// Location representa una ubicación/bodega con nombre dentro de un equipo.
// El nombre es único por equipo.
type Location struct {
	ID        string
	TeamID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
