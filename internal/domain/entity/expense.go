package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo de una sucursal.
type Expense struct {
	ID          string
	TenantID    string
	BranchID    string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        string // YYYY-MM-DD
	IsDeleted   bool
	CreatedBy   string
	CreatedAt   time.Time
}

// DailySummary resumen diario calculado desde ventas y gastos.
type DailySummary struct {
	Date          string
	SalesCount    int
	TotalSales    decimal.Decimal
	TotalProfit   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
}
