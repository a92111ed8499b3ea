package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un tenant.
// Quantity es el stock total en mano; el detalle por sucursal vive en StockLevel.
type Product struct {
	ID            string
	TenantID      string
	Name          string
	SKU           string
	Category      string
	CostPrice     decimal.Decimal // costo promedio ponderado (se recalcula en compras)
	SellingPrice  decimal.Decimal
	Quantity      decimal.Decimal
	MinStockLevel decimal.Decimal
	Unit          string // pieza, kg, litro...
	Suppliers     []ProductSupplier
	IsDeleted     bool
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Inventory sólo se llena en lecturas; no se persiste con el producto.
	Inventory *ProductInventory
}

// ProductSupplier vínculo producto-proveedor (se guarda como JSONB en products.suppliers).
type ProductSupplier struct {
	SupplierID           string          `json:"supplier_id"`
	SupplierName         string          `json:"supplier_name"`
	IsPrimary            bool            `json:"is_primary"`
	LastPurchasePrice    decimal.Decimal `json:"last_purchase_price"`
	AveragePurchasePrice decimal.Decimal `json:"average_purchase_price"`
	PurchaseCount        int             `json:"purchase_count"`
	LeadTimeDays         int             `json:"lead_time_days"`
	MinimumOrderQuantity decimal.Decimal `json:"minimum_order_quantity"`
}

// ProductInventory foto del inventario del producto en todas las sucursales.
type ProductInventory struct {
	TotalStock     decimal.Decimal
	AvailableStock decimal.Decimal
	ReservedStock  decimal.Decimal
	InTransitStock decimal.Decimal
	Branches       []BranchStock
	LowStockAlert  bool
	OutOfStock     bool
}

// BranchStock stock de un producto en una sucursal concreta.
type BranchStock struct {
	BranchID       string
	BranchName     string
	CurrentStock   decimal.Decimal
	ReservedStock  decimal.Decimal
	AvailableStock decimal.Decimal
	IsLowStock     bool
}

// PrimarySupplier devuelve el proveedor marcado como principal, o nil.
func (p *Product) PrimarySupplier() *ProductSupplier {
	for i := range p.Suppliers {
		if p.Suppliers[i].IsPrimary {
			return &p.Suppliers[i]
		}
	}
	return nil
}
