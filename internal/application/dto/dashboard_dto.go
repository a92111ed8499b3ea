package dto

import "github.com/shopspring/decimal"

// InventoryDashboardDTO respuesta de GET /api/inventory/dashboard.
// Totales del inventario del tenant, los productos en alerta y la actividad reciente.
type InventoryDashboardDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalUnits      decimal.Decimal `json:"total_units"`
	InventoryValue  decimal.Decimal `json:"inventory_value"` // Σ stock actual * costo
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`

	// Ventas del mes en curso (día 1 – hoy)
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`

	LowStockItems   []StockLevelResponse `json:"low_stock_items"`
	RecentMovements []MovementResponse   `json:"recent_movements"`
	TopProducts     []TopProductDTO      `json:"top_products"`

	DateLabel string `json:"date_label"` // ej: "Octubre 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
type TopProductDTO struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	QuantitySold     decimal.Decimal `json:"quantity_sold"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	MarginPercentage decimal.Decimal `json:"margin_percentage"` // profit / revenue * 100
}
