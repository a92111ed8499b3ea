package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult resultado crudo de productos más vendidos.
// Lo produce la DB; el use case lo convierte en DTO.
type TopProductResult struct {
	ProductID   string
	ProductName string
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal // Σ line_total de los ítems
	Profit      decimal.Decimal // Σ profit de los ítems
}

// AnalyticsRepository define las consultas de lectura para dashboards.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve ingresos y utilidad de ventas no borradas en el rango.
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetSalesMetrics(
		ctx context.Context,
		tenantID string,
		startDate, endDate time.Time,
	) (revenue, profit decimal.Decimal, count int, err error)

	// GetTopProducts devuelve los `limit` productos con mayor ingreso en el período.
	GetTopProducts(
		ctx context.Context,
		tenantID string,
		startDate, endDate time.Time,
		limit int,
	) ([]TopProductResult, error)
}
