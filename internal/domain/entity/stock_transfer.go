package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransfer traslado de unidades de un producto entre dos sucursales del mismo tenant.
type StockTransfer struct {
	ID             string
	TenantID       string
	TransferNumber string
	ProductID      string
	FromBranchID   string
	ToBranchID     string
	Quantity       decimal.Decimal
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time

	ProductName    string
	FromBranchName string
	ToBranchName   string
}
