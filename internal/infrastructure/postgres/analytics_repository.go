package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre las ventas para dashboards y reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics devuelve ingresos, utilidad y número de ventas no borradas del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	tenantID string,
	startDate, endDate time.Time,
) (revenue, profit decimal.Decimal, count int, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(s.total),        0) AS revenue,
	    COALESCE(SUM(s.total_profit), 0) AS profit,
	    COUNT(*)                         AS sales_count
	FROM sales s
	WHERE s.tenant_id = $1
	  AND s.ts BETWEEN $2 AND $3
	  AND NOT s.is_deleted`

	err = r.pool.QueryRow(ctx, query, tenantID, startDate, endDate).Scan(&revenue, &profit, &count)
	if err != nil {
		return decimal.Zero, decimal.Zero, 0, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return revenue, profit, count, nil
}

// GetTopProducts devuelve los `limit` productos con mayor ingreso en el período.
// Los ítems viven en sales.items (JSONB); se expanden con jsonb_to_recordset.
// limit <= 0 devuelve todos (reporte Pareto).
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	tenantID string,
	startDate, endDate time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    i.product_id,
	    MAX(i.product_name)        AS product_name,
	    SUM(i.quantity)            AS units_sold,
	    SUM(i.line_total)          AS revenue,
	    SUM(i.profit)              AS profit
	FROM sales s
	CROSS JOIN LATERAL jsonb_to_recordset(s.items) AS i(
	    product_id   TEXT,
	    product_name TEXT,
	    quantity     NUMERIC,
	    line_total   NUMERIC,
	    profit       NUMERIC
	)
	WHERE s.tenant_id = $1
	  AND s.ts BETWEEN $2 AND $3
	  AND NOT s.is_deleted
	GROUP BY i.product_id
	ORDER BY revenue DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, tenantID, startDate, endDate, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.UnitsSold,
			&row.Revenue,
			&row.Profit,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts rows: %w", err)
	}
	return results, nil
}
