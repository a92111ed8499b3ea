package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta. ProductName y CostPrice se toman del producto si vienen vacíos.
type SaleItemRequest struct {
	ProductID   string           `json:"product_id" validate:"required"`
	ProductName string           `json:"product_name" validate:"omitempty,max=200"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	BranchID      string            `json:"branch_id" validate:"required"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxRate       decimal.Decimal   `json:"tax_rate"`
	DiscountType  string            `json:"discount_type" validate:"omitempty,oneof=PERCENTAGE FIXED"`
	DiscountValue decimal.Decimal   `json:"discount_value"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card transfer credit"`
	CustomerName  string            `json:"customer_name" validate:"omitempty,max=200"`
	CustomerPhone string            `json:"customer_phone" validate:"omitempty,max=50"`
	Notes         string            `json:"notes" validate:"omitempty,max=500"`
}

// SaleFilterRequest query de GET /api/sales.
type SaleFilterRequest struct {
	PageRequest
	BranchID       string `query:"branch_id"`
	From           string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To             string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	IncludeDeleted bool   `query:"include_deleted"`
}

// SaleItemResponse línea de venta calculada.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Profit      decimal.Decimal `json:"profit"`
}

// SaleResponse venta multi-ítem.
type SaleResponse struct {
	ID            string             `json:"id"`
	SaleNumber    string             `json:"sale_number"`
	BranchID      string             `json:"branch_id"`
	StaffID       string             `json:"staff_id,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	Tax           decimal.Decimal    `json:"tax"`
	DiscountType  string             `json:"discount_type,omitempty"`
	DiscountValue decimal.Decimal    `json:"discount_value"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	TotalProfit   decimal.Decimal    `json:"total_profit"`
	PaymentMethod string             `json:"payment_method"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Timestamp     time.Time          `json:"timestamp"`
	Date          string             `json:"date"`
	IsDeleted     bool               `json:"is_deleted"`
	DeletedAt     *time.Time         `json:"deleted_at,omitempty"`
	// Warnings avisos no bloqueantes (p. ej. venta con stock insuficiente).
	Warnings []string `json:"warnings,omitempty"`
}

// MigrationResult resultado de POST /api/sales/migrate-legacy.
type MigrationResult struct {
	Migrated int `json:"migrated"`
	Skipped  int `json:"skipped"`
}
