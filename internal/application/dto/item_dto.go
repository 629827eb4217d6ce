package dto

import "github.com/shopspring/decimal"

// CreateItemRequest alta de artículo. InitialQuantity fija el stock de partida.
type CreateItemRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Barcode         string          `json:"barcode"`
	LocationID      *string         `json:"locationId"`
	InitialQuantity decimal.Decimal `json:"initialQuantity"`
}

// UpdateItemRequest edición de artículo. No incluye campos de stock:
// el stock solo cambia a través del ledger.
type UpdateItemRequest struct {
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Barcode    string  `json:"barcode"`
	LocationID *string `json:"locationId"`
}

// ItemResponse representación de un artículo.
type ItemResponse struct {
	ID              string          `json:"id"`
	TeamID          string          `json:"teamId"`
	LocationID      *string         `json:"locationId,omitempty"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Barcode         string          `json:"barcode"`
	InitialQuantity decimal.Decimal `json:"initialQuantity"`
	CurrentStock    decimal.Decimal `json:"currentStock"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
