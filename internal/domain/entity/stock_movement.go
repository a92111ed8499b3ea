package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementSale        = "SALE"
	MovementPurchase    = "PURCHASE"
	MovementAdjustment  = "ADJUSTMENT"
	MovementTransferIn  = "TRANSFER_IN"
	MovementTransferOut = "TRANSFER_OUT"
)

// StockMovement entrada de la bitácora de stock. Sólo se inserta, nunca se modifica.
type StockMovement struct {
	ID            string
	TenantID      string
	ProductID     string
	BranchID      string
	Type          string
	Quantity      decimal.Decimal // delta con signo
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	ReferenceID   string // venta, traslado u orden de compra
	Reason        string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time

	// ProductName sólo en lecturas.
	ProductName string
}

// IsValidMovementType indica si t es uno de los tipos conocidos.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementSale, MovementPurchase, MovementAdjustment, MovementTransferIn, MovementTransferOut:
		return true
	}
	return false
}
