package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel stock de un producto en una sucursal (fila por producto+sucursal).
type StockLevel struct {
	TenantID      string
	ProductID     string
	BranchID      string
	CurrentStock  decimal.Decimal
	ReservedStock decimal.Decimal
	MinStockLevel decimal.Decimal
	UpdatedAt     time.Time
}

// AvailableStock = CurrentStock - ReservedStock, nunca negativo.
func (s *StockLevel) AvailableStock() decimal.Decimal {
	avail := s.CurrentStock.Sub(s.ReservedStock)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

// StockLevelView fila de stock enriquecida para lecturas (nombre de producto/sucursal y costo).
type StockLevelView struct {
	StockLevel
	ProductName string
	SKU         string
	Category    string
	BranchName  string
	CostPrice   decimal.Decimal
}
