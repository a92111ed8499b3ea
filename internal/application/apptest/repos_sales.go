package apptest

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// SaleRepo fake de repository.SaleRepository.
type SaleRepo struct{ s *Store }

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo devuelve el repositorio de ventas.
func (s *Store) SaleRepo() *SaleRepo { return &SaleRepo{s: s} }

func cloneSale(sl entity.Sale) *entity.Sale {
	sl.Items = slices.Clone(sl.Items)
	return &sl
}

func (r *SaleRepo) Create(_ context.Context, sl *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Sales[sl.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.Sales[sl.ID] = *cloneSale(*sl)
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.Sales[id]
	if !ok || sl.TenantID != tenantID {
		return nil, nil
	}
	return cloneSale(sl), nil
}

func (r *SaleRepo) Exists(_ context.Context, tenantID, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.Sales[id]
	return ok && sl.TenantID == tenantID, nil
}

func (r *SaleRepo) List(_ context.Context, tenantID string, f repository.SaleFilter) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Sale
	for _, sl := range r.s.Sales {
		if sl.TenantID != tenantID || (sl.IsDeleted && !f.IncludeDeleted) {
			continue
		}
		if f.BranchID != "" && sl.BranchID != f.BranchID {
			continue
		}
		if f.BranchIDs != nil && !slices.Contains(f.BranchIDs, sl.BranchID) {
			continue
		}
		if (f.From != nil && sl.Timestamp.Before(*f.From)) || (f.To != nil && sl.Timestamp.After(*f.To)) {
			continue
		}
		out = append(out, cloneSale(sl))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return page(out, f.Limit, f.Offset), nil
}

func (r *SaleRepo) SoftDelete(_ context.Context, tenantID, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.Sales[id]
	if !ok || sl.TenantID != tenantID || sl.IsDeleted {
		return domain.ErrNotFound
	}
	sl.IsDeleted = true
	sl.DeletedAt = &at
	r.s.Sales[id] = sl
	return nil
}

func (r *SaleRepo) DailyTotals(_ context.Context, tenantID, from, to string) ([]repository.DailySalesResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	by := map[string]*repository.DailySalesResult{}
	for _, sl := range r.s.Sales {
		if sl.TenantID != tenantID || sl.IsDeleted || !inRange(sl.Date, from, to) {
			continue
		}
		d, ok := by[sl.Date]
		if !ok {
			d = &repository.DailySalesResult{Date: sl.Date}
			by[sl.Date] = d
		}
		d.SalesCount++
		d.TotalSales = d.TotalSales.Add(sl.Total)
		d.TotalProfit = d.TotalProfit.Add(sl.TotalProfit)
	}
	out := make([]repository.DailySalesResult, 0, len(by))
	for _, d := range by {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *SaleRepo) TotalsByBranch(_ context.Context, tenantID, date string) (map[string]decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]decimal.Decimal{}
	for _, sl := range r.s.Sales {
		if sl.TenantID == tenantID && !sl.IsDeleted && sl.Date == date {
			out[sl.BranchID] = out[sl.BranchID].Add(sl.Total)
		}
	}
	return out, nil
}

// LegacySaleRepo fake de repository.LegacySaleRepository.
type LegacySaleRepo struct{ s *Store }

var _ repository.LegacySaleRepository = (*LegacySaleRepo)(nil)

// LegacySaleRepo devuelve el repositorio de ventas legadas.
func (s *Store) LegacySaleRepo() *LegacySaleRepo { return &LegacySaleRepo{s: s} }

func (r *LegacySaleRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.LegacySale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.LegacySale
	for _, ls := range r.s.LegacySales {
		if ls.TenantID == tenantID {
			out = append(out, &ls)
		}
	}
	return out, nil
}

// AnalyticsRepo fake de repository.AnalyticsRepository calculado desde las ventas del Store.
type AnalyticsRepo struct{ s *Store }

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo devuelve el repositorio de analítica.
func (s *Store) AnalyticsRepo() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

func (r *AnalyticsRepo) GetSalesMetrics(_ context.Context, tenantID string, start, end time.Time) (decimal.Decimal, decimal.Decimal, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rev, profit, n := decimal.Zero, decimal.Zero, 0
	for _, sl := range r.s.Sales {
		if sl.TenantID != tenantID || sl.IsDeleted || sl.Timestamp.Before(start) || sl.Timestamp.After(end) {
			continue
		}
		rev = rev.Add(sl.Total)
		profit = profit.Add(sl.TotalProfit)
		n++
	}
	return rev, profit, n, nil
}

func (r *AnalyticsRepo) GetTopProducts(_ context.Context, tenantID string, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	by := map[string]*repository.TopProductResult{}
	for _, sl := range r.s.Sales {
		if sl.TenantID != tenantID || sl.IsDeleted || sl.Timestamp.Before(start) || sl.Timestamp.After(end) {
			continue
		}
		for _, it := range sl.Items {
			t, ok := by[it.ProductID]
			if !ok {
				t = &repository.TopProductResult{ProductID: it.ProductID, ProductName: it.ProductName}
				by[it.ProductID] = t
			}
			t.UnitsSold = t.UnitsSold.Add(it.Quantity)
			t.Revenue = t.Revenue.Add(it.LineTotal)
			t.Profit = t.Profit.Add(it.Profit)
		}
	}
	out := make([]repository.TopProductResult, 0, len(by))
	for _, t := range by {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return page(out, limit, 0), nil
}
