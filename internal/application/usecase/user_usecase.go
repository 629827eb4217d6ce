package usecase

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// UserUseCase perfil del usuario autenticado: lectura, edición y cambio de contraseña.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.loadUser(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualiza email y nombre. Email ya tomado por otro usuario → 409.
func (uc *UserUseCase) UpdateProfile(userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.loadUser(userID)
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, domain.Validation("email es obligatorio")
	}
	if email != user.Email {
		existing, err := uc.users.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.Conflict(domain.CodeEmailExists, "el email ya está registrado")
		}
	}

	user.Email = email
	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangePassword verifica la contraseña actual y persiste el nuevo hash bcrypt.
func (uc *UserUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.loadUser(userID)
	if err != nil {
		return err
	}
	if len(in.NewPassword) < 8 {
		return domain.Validation("la nueva contraseña debe tener al menos 8 caracteres")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.Validation("la contraseña actual no coincide")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.users.Update(user)
}

func (uc *UserUseCase) loadUser(userID string) (*entity.User, error) {
	if userID == "" {
		return nil, domain.Unauthenticated()
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.UserNotFound()
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: dto.ISOTime(u.CreatedAt),
		UpdatedAt: dto.ISOTime(u.UpdatedAt),
	}
}
