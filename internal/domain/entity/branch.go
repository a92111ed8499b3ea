package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch sucursal del negocio. Los agregados se recalculan en reportes, no transaccionalmente.
type Branch struct {
	ID           string
	TenantID     string
	Name         string
	Address      string
	City         string
	Phone        string
	Email        string
	OpeningHours string
	ManagerID    string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BranchStats agregados de solo lectura de una sucursal.
type BranchStats struct {
	BranchID        string
	BranchName      string
	TotalProducts   int
	TotalUnits      decimal.Decimal
	InventoryValue  decimal.Decimal
	LowStockCount   int
	OutOfStockCount int
}
