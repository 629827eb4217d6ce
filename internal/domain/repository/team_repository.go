package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// TeamRepository define el puerto de persistencia para equipos.
type TeamRepository interface {
	Create(team *entity.Team) error
	GetByID(id string) (*entity.Team, error)
	ListByUser(userID string) ([]*entity.Team, error)
	UpdateName(id, name string) error
	// UpdateSubscription persiste el snapshot de suscripción devuelto por el proveedor.
	UpdateSubscription(id, customerID, subscriptionID, status string) error
	// Delete elimina el equipo; devuelve false si no existía.
	Delete(id string) (bool, error)
}
