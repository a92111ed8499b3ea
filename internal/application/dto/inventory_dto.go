package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/stock/adjust.
// Reason acepta el código (DAMAGED) o la etiqueta ("Damaged goods").
type AdjustStockRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	BranchID  string          `json:"branch_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"` // delta con signo
	Reason    string          `json:"reason" validate:"required"`
	Notes     string          `json:"notes" validate:"omitempty,max=500"`
}

// InitializeInventoryRequest body para POST /api/inventory/initialize.
type InitializeInventoryRequest struct {
	BranchID     string          `json:"branch_id" validate:"required"`
	DefaultStock decimal.Decimal `json:"default_stock"`
}

// InitializeInventoryResponse resultado de la inicialización (idempotente).
type InitializeInventoryResponse struct {
	BranchID string `json:"branch_id"`
	Created  int    `json:"created"`
	Skipped  int    `json:"skipped"`
}

// StockFilterRequest query de GET /api/inventory/stock.
type StockFilterRequest struct {
	PageRequest
	BranchID     string `query:"branch_id"`
	ProductID    string `query:"product_id"`
	LowStockOnly bool   `query:"low_stock"`
}

// StockLevelResponse nivel de stock de producto+sucursal.
type StockLevelResponse struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	SKU            string          `json:"sku"`
	Category       string          `json:"category"`
	BranchID       string          `json:"branch_id"`
	BranchName     string          `json:"branch_name"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	ReservedStock  decimal.Decimal `json:"reserved_stock"`
	AvailableStock decimal.Decimal `json:"available_stock"`
	MinStockLevel  decimal.Decimal `json:"min_stock_level"`
	IsLowStock     bool            `json:"is_low_stock"`
	IsOutOfStock   bool            `json:"is_out_of_stock"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MovementFilterRequest query de GET /api/inventory/movements.
type MovementFilterRequest struct {
	PageRequest
	BranchID  string `query:"branch_id"`
	ProductID string `query:"product_id"`
	Type      string `query:"type" validate:"omitempty,oneof=SALE PURCHASE ADJUSTMENT TRANSFER_IN TRANSFER_OUT"`
	From      string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// MovementResponse entrada de la bitácora de stock.
type MovementResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	BranchID      string          `json:"branch_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransferRequest body para POST /api/transfers.
type TransferRequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	FromBranchID string          `json:"from_branch_id" validate:"required"`
	ToBranchID   string          `json:"to_branch_id" validate:"required,nefield=FromBranchID"`
	Quantity     decimal.Decimal `json:"quantity"`
	Notes        string          `json:"notes" validate:"omitempty,max=500"`
}

// TransferResponse traslado registrado.
type TransferResponse struct {
	ID             string          `json:"id"`
	TransferNumber string          `json:"transfer_number"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	FromBranchID   string          `json:"from_branch_id"`
	FromBranchName string          `json:"from_branch_name,omitempty"`
	ToBranchID     string          `json:"to_branch_id"`
	ToBranchName   string          `json:"to_branch_name,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PurchaseRequest body para POST /api/suppliers/:id/purchases (recepción de compra).
type PurchaseRequest struct {
	ProductID    string           `json:"product_id" validate:"required"`
	BranchID     string           `json:"branch_id" validate:"required"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitCost     decimal.Decimal  `json:"unit_cost"`
	ExpectedDate *time.Time       `json:"expected_date"`
	Rating       *decimal.Decimal `json:"rating"`
	Notes        string           `json:"notes" validate:"omitempty,max=500"`
}

// BranchStockSummaryDTO totales de inventario de una sucursal (GET /api/inventory/branches).
type BranchStockSummaryDTO struct {
	BranchID        string          `json:"branch_id"`
	BranchName      string          `json:"branch_name"`
	TotalProducts   int             `json:"total_products"`
	TotalUnits      decimal.Decimal `json:"total_units"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
}

// ReasonDTO motivo de ajuste disponible.
type ReasonDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ReplenishmentSuggestionDTO representa una sugerencia de reposición para un producto
// que está en o por debajo de su stock mínimo en una sucursal.
type ReplenishmentSuggestionDTO struct {
	ProductID           string          `json:"product_id"`
	SKU                 string          `json:"sku"`
	ProductName         string          `json:"product_name"`
	BranchID            string          `json:"branch_id"`
	CurrentStock        decimal.Decimal `json:"current_stock"`
	MinStockLevel       decimal.Decimal `json:"min_stock_level"`
	IdealStock          decimal.Decimal `json:"ideal_stock"`          // MinStockLevel * 1.5
	SuggestedOrderQty   decimal.Decimal `json:"suggested_order_qty"`  // IdealStock - CurrentStock, respetando el mínimo de compra
	UnitCost            decimal.Decimal `json:"unit_cost"`            // costo promedio ponderado
	EstimatedOrderCost  decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	UnitsSoldLast90Days decimal.Decimal `json:"units_sold_last_90d"`
	SupplierID          string          `json:"supplier_id,omitempty"`
	SupplierName        string          `json:"supplier_name,omitempty"`
	Priority            int             `json:"priority"` // 1 = más urgente
}
