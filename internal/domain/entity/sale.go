package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento de una venta.
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentCredit   = "credit"
)

// Sale venta multi-ítem. Los totales deben poder recalcularse desde Items en cualquier momento.
type Sale struct {
	ID            string
	TenantID      string
	SaleNumber    string
	BranchID      string
	StaffID       string
	Items         []SaleItem
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // porcentaje (10 = 10%)
	Tax           decimal.Decimal
	DiscountType  string // PERCENTAGE | FIXED | vacío
	DiscountValue decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	TotalProfit   decimal.Decimal
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	Notes         string
	Timestamp     time.Time
	Date          string // YYYY-MM-DD derivado de Timestamp
	IsDeleted     bool
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem línea de una venta. LineTotal y Profit son derivados.
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Profit      decimal.Decimal `json:"profit"`
}

// LegacySale registro de venta de un solo producto del modelo anterior (tabla legacy_sales).
type LegacySale struct {
	ID            string
	TenantID      string
	ProductID     string
	ProductName   string
	Quantity      decimal.Decimal
	SellingPrice  decimal.Decimal
	CostPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
	Profit        decimal.Decimal
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	BranchID      string
	Timestamp     time.Time
	IsDeleted     bool
	DeletedAt     *time.Time
}
