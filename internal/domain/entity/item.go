package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo de inventario de un equipo, opcionalmente ubicado
// en una Location. CurrentStock es un valor derivado: la vista materializada de
// reproducir el ledger desde InitialQuantity. Solo el motor de ledger lo escribe.
type Item struct {
	ID              string
	TeamID          string
	LocationID      *string
	Name            string
	SKU             string
	Barcode         string
	InitialQuantity decimal.Decimal
	CurrentStock    decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
