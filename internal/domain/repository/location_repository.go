package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones.
// Create y Update devuelven domain.ErrDuplicate si el nombre ya existe en el equipo.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id, teamID string) (*entity.Location, error)
	ListByTeam(teamID string) ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id, teamID string) (bool, error)
}
