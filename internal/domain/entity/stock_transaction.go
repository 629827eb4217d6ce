package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de stock.
const (
	TransactionStockIn  = "stock_in"  // entrada: suma quantity
	TransactionStockOut = "stock_out" // salida: resta quantity, rechaza si excede el stock
	TransactionAdjust   = "adjust"    // ajuste: fija quantity como valor absoluto
	TransactionMove     = "move"      // traslado: cambia ubicación, no afecta stock
	TransactionCount    = "count"     // conteo físico: mismo efecto que adjust
)

// ValidTransactionType indica si el tipo pertenece al vocabulario del ledger.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionStockIn, TransactionStockOut, TransactionAdjust, TransactionMove, TransactionCount:
		return true
	}
	return false
}

// AbsoluteTransactionType indica si quantity es un valor absoluto (nivel final)
// en lugar de un delta.
func AbsoluteTransactionType(t string) bool {
	return t == TransactionAdjust || t == TransactionCount
}

// StockTransaction es un registro inmutable y append-only del ledger de stock.
// Una vez escrito nunca se modifica; el borrado físico existe solo como vía de
// corrección explícita y no revierte el efecto sobre Item.CurrentStock.
type StockTransaction struct {
	ID                    string
	ItemID                string
	TeamID                string
	TransactionType       string
	Quantity              decimal.Decimal
	UserID                string
	SourceLocationID      *string
	DestinationLocationID *string
	Notes                 string
	CreatedAt             time.Time
}

// StockTransactionDetail es la fila de listado: la transacción junto con los
// snapshots de artículo, usuario y ubicaciones para mostrar.
type StockTransactionDetail struct {
	StockTransaction
	ItemName                string
	ItemSKU                 string
	ItemBarcode             string
	UserEmail               string
	SourceLocationName      *string
	DestinationLocationName *string
}
