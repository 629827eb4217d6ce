package dto

import "github.com/shopspring/decimal"

// ApplyTransactionRequest registra un movimiento de stock vía el motor de ledger.
type ApplyTransactionRequest struct {
	ItemID                string          `json:"itemId"`
	TransactionType       string          `json:"transactionType"`
	Quantity              decimal.Decimal `json:"quantity"`
	SourceLocationID      *string         `json:"sourceLocationId"`
	DestinationLocationID *string         `json:"destinationLocationId"`
	Notes                 string          `json:"notes"`
}

// TransactionResponse representación de una transacción de stock.
type TransactionResponse struct {
	ID                    string          `json:"id"`
	ItemID                string          `json:"itemId"`
	TeamID                string          `json:"teamId"`
	TransactionType       string          `json:"transactionType"`
	Quantity              decimal.Decimal `json:"quantity"`
	UserID                string          `json:"userId"`
	SourceLocationID      *string         `json:"sourceLocationId,omitempty"`
	DestinationLocationID *string         `json:"destinationLocationId,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
	CreatedAt             string          `json:"createdAt"`
}

// TransactionDetailResponse fila de listado con snapshots para mostrar.
type TransactionDetailResponse struct {
	TransactionResponse
	ItemName                string  `json:"itemName"`
	ItemSKU                 string  `json:"itemSku"`
	ItemBarcode             string  `json:"itemBarcode,omitempty"`
	UserEmail               string  `json:"userEmail"`
	SourceLocationName      *string `json:"sourceLocationName,omitempty"`
	DestinationLocationName *string `json:"destinationLocationName,omitempty"`
}

// TransactionListResponse listado paginado de transacciones.
type TransactionListResponse struct {
	Items []TransactionDetailResponse `json:"items"`
	Page  PageResponse                `json:"page"`
}

// DeleteTransactionResponse resultado del borrado: deleted=false cuando la fila
// no existía (no es un error).
type DeleteTransactionResponse struct {
	Deleted bool `json:"deleted"`
}
