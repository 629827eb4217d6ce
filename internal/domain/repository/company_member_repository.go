package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// CompanyMemberRepository define el puerto para membresías a nivel empresa.
type CompanyMemberRepository interface {
	Create(member *entity.CompanyMember) error
	// GetActiveByUser devuelve la membresía activa del usuario (nil si no tiene ninguna).
	GetActiveByUser(userID string) (*entity.CompanyMember, error)
	GetByCompanyAndUser(companyID, userID string) (*entity.CompanyMember, error)
}
