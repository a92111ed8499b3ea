package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSupplierDTO vínculo producto-proveedor.
type ProductSupplierDTO struct {
	SupplierID           string          `json:"supplier_id" validate:"required"`
	SupplierName         string          `json:"supplier_name"`
	IsPrimary            bool            `json:"is_primary"`
	LastPurchasePrice    decimal.Decimal `json:"last_purchase_price"`
	AveragePurchasePrice decimal.Decimal `json:"average_purchase_price"`
	LeadTimeDays         int             `json:"lead_time_days" validate:"min=0"`
	MinimumOrderQuantity decimal.Decimal `json:"minimum_order_quantity"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string               `json:"name" validate:"required,min=1,max=200"`
	SKU           string               `json:"sku" validate:"omitempty,max=100"`
	Category      string               `json:"category" validate:"omitempty,max=100"`
	CostPrice     decimal.Decimal      `json:"cost_price"`
	SellingPrice  decimal.Decimal      `json:"selling_price"`
	MinStockLevel decimal.Decimal      `json:"min_stock_level"`
	Unit          string               `json:"unit" validate:"omitempty,max=30"`
	Suppliers     []ProductSupplierDTO `json:"suppliers" validate:"omitempty,dive"`
	// Quantity stock inicial; si es positivo se registra como ajuste INITIAL en BranchID.
	Quantity decimal.Decimal `json:"quantity"`
	BranchID string          `json:"branch_id"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity: el stock cambia por movimientos).
type UpdateProductRequest struct {
	Name          *string              `json:"name" validate:"omitempty,min=1,max=200"`
	SKU           *string              `json:"sku" validate:"omitempty,max=100"`
	Category      *string              `json:"category" validate:"omitempty,max=100"`
	CostPrice     *decimal.Decimal     `json:"cost_price"`
	SellingPrice  *decimal.Decimal     `json:"selling_price"`
	MinStockLevel *decimal.Decimal     `json:"min_stock_level"`
	Unit          *string              `json:"unit" validate:"omitempty,max=30"`
	Suppliers     []ProductSupplierDTO `json:"suppliers" validate:"omitempty,dive"`
}

// ProductFilterRequest query de GET /api/products.
type ProductFilterRequest struct {
	PageRequest
	Category string `query:"category"`
	Search   string `query:"search"`
}

// BranchStockDTO stock del producto en una sucursal.
type BranchStockDTO struct {
	BranchID       string          `json:"branch_id"`
	BranchName     string          `json:"branch_name"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	ReservedStock  decimal.Decimal `json:"reserved_stock"`
	AvailableStock decimal.Decimal `json:"available_stock"`
	IsLowStock     bool            `json:"is_low_stock"`
}

// ProductInventoryDTO foto de inventario del producto.
type ProductInventoryDTO struct {
	TotalStock     decimal.Decimal  `json:"total_stock"`
	AvailableStock decimal.Decimal  `json:"available_stock"`
	ReservedStock  decimal.Decimal  `json:"reserved_stock"`
	InTransitStock decimal.Decimal  `json:"in_transit_stock"`
	Branches       []BranchStockDTO `json:"branches"`
	LowStockAlert  bool             `json:"low_stock_alert"`
	OutOfStock     bool             `json:"out_of_stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	SKU           string               `json:"sku"`
	Category      string               `json:"category"`
	CostPrice     decimal.Decimal      `json:"cost_price"`
	SellingPrice  decimal.Decimal      `json:"selling_price"`
	Quantity      decimal.Decimal      `json:"quantity"`
	MinStockLevel decimal.Decimal      `json:"min_stock_level"`
	Unit          string               `json:"unit"`
	Suppliers     []ProductSupplierDTO `json:"suppliers"`
	IsLowStock    bool                 `json:"is_low_stock"`
	IsOutOfStock  bool                 `json:"is_out_of_stock"`
	IsDeleted     bool                 `json:"is_deleted"`
	Inventory     *ProductInventoryDTO `json:"inventory,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
