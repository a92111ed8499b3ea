package dto

import "github.com/shopspring/decimal"

// PeriodDTO rango de fechas de un reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ProductReportRequest query de GET /api/reports/products.
type ProductReportRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	TopN      int    `query:"top_n" validate:"min=0,max=200"`
}

// ProductRankingDTO producto del ranking por ingresos con su participación acumulada.
type ProductRankingDTO struct {
	Rank             int             `json:"rank"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	UnitsSold        decimal.Decimal `json:"units_sold"`
	Revenue          decimal.Decimal `json:"revenue"`
	Profit           decimal.Decimal `json:"profit"`
	MarginPct        decimal.Decimal `json:"margin_pct"`
	RevenuePct       decimal.Decimal `json:"revenue_pct"`
	CumulativeRevPct decimal.Decimal `json:"cumulative_revenue_pct"`
	IsTopPareto      bool            `json:"is_top_pareto"`
}

// ProductReportDTO respuesta de GET /api/reports/products.
type ProductReportDTO struct {
	Period           PeriodDTO           `json:"period"`
	SalesCount       int                 `json:"sales_count"`
	TotalRevenue     decimal.Decimal     `json:"total_revenue"`
	TotalProfit      decimal.Decimal     `json:"total_profit"`
	OverallMarginPct decimal.Decimal     `json:"overall_margin_pct"`
	Ranking          []ProductRankingDTO `json:"ranking"`
	ParetoProducts   []ProductRankingDTO `json:"pareto_products"`
}
