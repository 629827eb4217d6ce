package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	// UpdateDisplayLabel actualiza la etiqueta visible derivada. Participa en la
	// misma transacción que el cambio de nombre del equipo cuando se usa vía TxRunner.
	UpdateDisplayLabel(id, label string) error
}
