package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

const (
	defaultTopN     = 20
	maxTopN         = 200
	maxSummaryDays  = 366
	paretoThreshold = 80 // el top de productos que acumula ~80% del ingreso
)

var (
	hundred  = decimal.NewFromInt(100)
	pareto80 = decimal.NewFromInt(paretoThreshold)
)

// ReportUseCase reportes de lectura: resumen diario (ventas − gastos) y ranking de productos.
type ReportUseCase struct {
	sales     repository.SaleRepository
	expenses  repository.ExpenseRepository
	analytics repository.AnalyticsRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(sales repository.SaleRepository, expenses repository.ExpenseRepository, analytics repository.AnalyticsRepository) *ReportUseCase {
	return &ReportUseCase{sales: sales, expenses: expenses, analytics: analytics}
}

// DailySummary un renglón por día del rango, incluidos los días sin movimiento.
// NetProfit = utilidad de ventas − gastos del día.
func (uc *ReportUseCase) DailySummary(ctx context.Context, tenantID string, req dto.DailySummaryRequest) ([]dto.DailySummaryDTO, error) {
	start, end, err := parsePeriod(req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	from, to := start.Format(dateLayout), end.Format(dateLayout)
	if end.Sub(start) > maxSummaryDays*24*time.Hour {
		return nil, fmt.Errorf("%w: el rango no puede superar %d días", domain.ErrInvalidInput, maxSummaryDays)
	}

	type salesResult struct {
		rows []repository.DailySalesResult
		err  error
	}
	type expensesResult struct {
		totals map[string]decimal.Decimal
		err    error
	}
	salesCh := make(chan salesResult, 1)
	expCh := make(chan expensesResult, 1)
	go func() {
		rows, err := uc.sales.DailyTotals(ctx, tenantID, from, to)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		totals, err := uc.expenses.DailyTotals(ctx, tenantID, from, to)
		expCh <- expensesResult{totals, err}
	}()
	sr, er := <-salesCh, <-expCh
	if sr.err != nil {
		return nil, fmt.Errorf("reporte: ventas: %w", sr.err)
	}
	if er.err != nil {
		return nil, fmt.Errorf("reporte: gastos: %w", er.err)
	}

	byDate := make(map[string]repository.DailySalesResult, len(sr.rows))
	for _, r := range sr.rows {
		byDate[r.Date] = r
	}
	var out []dto.DailySummaryDTO
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)
		s := byDate[date]
		exp := er.totals[date]
		out = append(out, dto.DailySummaryDTO{
			Date:          date,
			SalesCount:    s.SalesCount,
			TotalSales:    s.TotalSales.Round(2),
			TotalProfit:   s.TotalProfit.Round(2),
			TotalExpenses: exp.Round(2),
			NetProfit:     s.TotalProfit.Sub(exp).Round(2),
		})
	}
	return out, nil
}

// ProductReport ranking de productos por ingreso en el período con análisis Pareto.
func (uc *ReportUseCase) ProductReport(ctx context.Context, tenantID string, req dto.ProductReportRequest) (*dto.ProductReportDTO, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}
	endInclusive := end.Add(24*time.Hour - time.Nanosecond)

	type metricsResult struct {
		revenue, profit decimal.Decimal
		count           int
		err             error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}
	metricsCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)
	go func() {
		rev, profit, count, err := uc.analytics.GetSalesMetrics(ctx, tenantID, start, endInclusive)
		metricsCh <- metricsResult{rev, profit, count, err}
	}()
	go func() {
		rows, err := uc.analytics.GetTopProducts(ctx, tenantID, start, endInclusive, topN)
		topCh <- topResult{rows, err}
	}()
	m, top := <-metricsCh, <-topCh
	if m.err != nil {
		return nil, fmt.Errorf("reporte: métricas: %w", m.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", top.err)
	}

	ranking := buildProductRanking(top.rows)
	pareto := []dto.ProductRankingDTO{}
	for _, r := range ranking {
		if r.IsTopPareto {
			pareto = append(pareto, r)
		}
	}
	return &dto.ProductReportDTO{
		Period:           dto.PeriodDTO{StartDate: start.Format(dateLayout), EndDate: end.Format(dateLayout)},
		SalesCount:       m.count,
		TotalRevenue:     m.revenue.Round(2),
		TotalProfit:      m.profit.Round(2),
		OverallMarginPct: percent(m.profit, m.revenue),
		Ranking:          ranking,
		ParetoProducts:   pareto,
	}, nil
}

// buildProductRanking calcula participación y acumulado; IsTopPareto marca los productos hasta cruzar el 80%.
func buildProductRanking(rows []repository.TopProductResult) []dto.ProductRankingDTO {
	ranking := make([]dto.ProductRankingDTO, 0, len(rows))
	var total decimal.Decimal
	for _, r := range rows {
		total = total.Add(r.Revenue)
	}
	var cumulative decimal.Decimal
	for i, r := range rows {
		revenuePct := percent(r.Revenue, total)
		before := cumulative
		cumulative = cumulative.Add(revenuePct)
		ranking = append(ranking, dto.ProductRankingDTO{
			Rank:             i + 1,
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			UnitsSold:        r.UnitsSold,
			Revenue:          r.Revenue.Round(2),
			Profit:           r.Profit.Round(2),
			MarginPct:        percent(r.Profit, r.Revenue),
			RevenuePct:       revenuePct,
			CumulativeRevPct: cumulative.Round(2),
			// incluye el producto que cruza el umbral
			IsTopPareto: before.LessThan(pareto80),
		})
	}
	return ranking
}

func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// parsePeriod fechas YYYY-MM-DD (UTC). Por defecto: del día 1 del mes en curso a hoy.
func parsePeriod(startStr, endStr string) (start, end time.Time, err error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if endStr == "" {
		end = today
	} else if end, err = time.Parse(dateLayout, endStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha final inválida: %w", err)
	}
	if startStr == "" {
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else if start, err = time.Parse(dateLayout, startStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha inicial inválida: %w", err)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("la fecha inicial no puede ser posterior a la final")
	}
	return start, end, nil
}
