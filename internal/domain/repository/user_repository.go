package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
