// Package analytics contiene los dashboards de solo lectura (sucursales, inventario y proveedores).
// Cada dashboard se cachea por tenant; las mutaciones de stock invalidan las claves.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	domaininv "github.com/chukwumela909/Web-App-sub001/internal/domain/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
	"github.com/chukwumela909/Web-App-sub001/pkg/logger"
)

const (
	dashboardTopProducts = 5  // productos en el widget del dashboard
	dashboardMovements   = 10 // movimientos recientes
	dashboardLowStock    = 20 // productos en alerta listados
	dashboardSuppliers   = 5  // proveedores por gasto
)

// Deps dependencias del DashboardUseCase. Cache y Logger son opcionales.
type Deps struct {
	Branches  repository.BranchRepository
	Stock     repository.StockRepository
	Movements repository.StockMovementRepository
	Sales     repository.SaleRepository
	Suppliers repository.SupplierRepository
	Orders    repository.SupplierOrderRepository
	Analytics repository.AnalyticsRepository
	Cache     ports.Cache
	Logger    *logger.Logger
}

// DashboardUseCase arma los agregados de los dashboards lanzando las consultas independientes en paralelo.
type DashboardUseCase struct {
	d   Deps
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(d Deps) *DashboardUseCase {
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	return &DashboardUseCase{d: d, now: time.Now}
}

// result par valor/error para recoger goroutines.
type result[T any] struct {
	v   T
	err error
}

func async[T any](fn func() (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn()
		ch <- result[T]{v, err}
	}()
	return ch
}

// cached devuelve el valor cacheado o lo construye y lo guarda. Los errores de caché sólo se loguean.
func cached[T any](ctx context.Context, uc *DashboardUseCase, kind, tenantID string, build func() (*T, error)) (*T, error) {
	key := ports.DashboardKey(kind, tenantID)
	if uc.d.Cache != nil {
		var hit T
		found, err := uc.d.Cache.Get(ctx, key, &hit)
		if err != nil {
			uc.d.Logger.Warn().Err(err).Str("key", key).Msg("dashboard: lectura de caché falló")
		} else if found {
			return &hit, nil
		}
	}
	v, err := build()
	if err != nil {
		return nil, err
	}
	if uc.d.Cache != nil {
		if err := uc.d.Cache.Set(ctx, key, v); err != nil {
			uc.d.Logger.Warn().Err(err).Str("key", key).Msg("dashboard: escritura de caché falló")
		}
	}
	return v, nil
}

// Branches sucursales con sus agregados de inventario y la venta del día.
//
// Tres consultas en paralelo:
//  1. Branches.List       → ficha de cada sucursal (incluidas inactivas)
//  2. Stock.BranchStats   → productos, valor, alertas por sucursal activa
//  3. Sales.TotalsByBranch(hoy)
func (uc *DashboardUseCase) Branches(ctx context.Context, tenantID string) (*dto.BranchDashboardDTO, error) {
	return cached(ctx, uc, ports.DashboardBranches, tenantID, func() (*dto.BranchDashboardDTO, error) {
		today := uc.now().UTC().Format("2006-01-02")
		branchesCh := async(func() ([]*entity.Branch, error) { return uc.d.Branches.List(ctx, tenantID, true) })
		statsCh := async(func() ([]entity.BranchStats, error) { return uc.d.Stock.BranchStats(ctx, tenantID) })
		salesCh := async(func() (map[string]decimal.Decimal, error) {
			return uc.d.Sales.TotalsByBranch(ctx, tenantID, today)
		})
		branches, stats, sales := <-branchesCh, <-statsCh, <-salesCh
		if branches.err != nil {
			return nil, fmt.Errorf("dashboard: sucursales: %w", branches.err)
		}
		if stats.err != nil {
			return nil, fmt.Errorf("dashboard: stock por sucursal: %w", stats.err)
		}
		if sales.err != nil {
			return nil, fmt.Errorf("dashboard: ventas del día: %w", sales.err)
		}

		byBranch := make(map[string]entity.BranchStats, len(stats.v))
		for _, s := range stats.v {
			byBranch[s.BranchID] = s
		}
		out := &dto.BranchDashboardDTO{Branches: make([]dto.BranchDashboardItem, 0, len(branches.v))}
		for _, b := range branches.v {
			st := byBranch[b.ID]
			item := dto.BranchDashboardItem{
				BranchResponse:  *usecase.ToBranchResponse(b),
				TotalProducts:   st.TotalProducts,
				InventoryValue:  st.InventoryValue.Round(2),
				LowStockCount:   st.LowStockCount,
				OutOfStockCount: st.OutOfStockCount,
				TodaySales:      sales.v[b.ID].Round(2),
			}
			out.TotalBranches++
			if b.IsActive {
				out.ActiveBranches++
			}
			out.InventoryValue = out.InventoryValue.Add(item.InventoryValue)
			out.TodaySales = out.TodaySales.Add(item.TodaySales)
			out.Branches = append(out.Branches, item)
		}
		return out, nil
	})
}

// Inventory totales del inventario del tenant, alertas, movimientos recientes y ventas del mes.
func (uc *DashboardUseCase) Inventory(ctx context.Context, tenantID string) (*dto.InventoryDashboardDTO, error) {
	return cached(ctx, uc, ports.DashboardInventory, tenantID, func() (*dto.InventoryDashboardDTO, error) {
		now := uc.now().UTC()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

		type metrics struct {
			revenue, profit decimal.Decimal
		}
		levelsCh := async(func() ([]*entity.StockLevelView, error) {
			return uc.d.Stock.List(ctx, tenantID, repository.StockFilter{})
		})
		movesCh := async(func() ([]*entity.StockMovement, error) {
			return uc.d.Movements.List(ctx, tenantID, repository.MovementFilter{Limit: dashboardMovements})
		})
		metricsCh := async(func() (metrics, error) {
			rev, profit, _, err := uc.d.Analytics.GetSalesMetrics(ctx, tenantID, monthStart, now)
			return metrics{rev, profit}, err
		})
		topCh := async(func() ([]repository.TopProductResult, error) {
			return uc.d.Analytics.GetTopProducts(ctx, tenantID, monthStart, now, dashboardTopProducts)
		})
		levels, moves, month, top := <-levelsCh, <-movesCh, <-metricsCh, <-topCh
		for _, err := range []error{levels.err, moves.err, month.err, top.err} {
			if err != nil {
				return nil, fmt.Errorf("dashboard: inventario: %w", err)
			}
		}

		out := &dto.InventoryDashboardDTO{
			MonthlySales:    month.v.revenue.Round(2),
			MonthlyProfit:   month.v.profit.Round(2),
			LowStockItems:   []dto.StockLevelResponse{},
			RecentMovements: make([]dto.MovementResponse, 0, len(moves.v)),
			TopProducts:     make([]dto.TopProductDTO, 0, len(top.v)),
			DateLabel:       monthLabel(now),
		}
		products := map[string]bool{}
		for _, l := range levels.v {
			products[l.ProductID] = true
			out.TotalUnits = out.TotalUnits.Add(l.CurrentStock)
			out.InventoryValue = out.InventoryValue.Add(l.CurrentStock.Mul(l.CostPrice))
			c := domaininv.ClassifyStock(l.AvailableStock(), l.MinStockLevel)
			if c.IsOutOfStock {
				out.OutOfStockCount++
			}
			if c.IsLowStock {
				out.LowStockCount++
				if len(out.LowStockItems) < dashboardLowStock {
					out.LowStockItems = append(out.LowStockItems, inventory.ToStockLevelResponse(l))
				}
			}
		}
		out.TotalProducts = len(products)
		out.InventoryValue = out.InventoryValue.Round(2)
		for _, m := range moves.v {
			out.RecentMovements = append(out.RecentMovements, inventory.ToMovementResponse(m))
		}
		for _, t := range top.v {
			margin := decimal.Zero
			if t.Revenue.IsPositive() {
				margin = t.Profit.Div(t.Revenue).Mul(decimal.NewFromInt(100)).Round(2)
			}
			out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
				ProductID:        t.ProductID,
				ProductName:      t.ProductName,
				QuantitySold:     t.UnitsSold,
				TotalRevenue:     t.Revenue.Round(2),
				MarginPercentage: margin,
			})
		}
		return out, nil
	})
}

// Suppliers conteo de proveedores, gasto total, puntualidad global y los principales por gasto.
func (uc *DashboardUseCase) Suppliers(ctx context.Context, tenantID string) (*dto.SupplierDashboardDTO, error) {
	return cached(ctx, uc, ports.DashboardSuppliers, tenantID, func() (*dto.SupplierDashboardDTO, error) {
		suppliersCh := async(func() ([]*entity.Supplier, error) { return uc.d.Suppliers.List(ctx, tenantID, 0, 0) })
		perfCh := async(func() ([]entity.SupplierPerformance, error) { return uc.d.Orders.Performance(ctx, tenantID) })
		suppliers, perf := <-suppliersCh, <-perfCh
		if suppliers.err != nil {
			return nil, fmt.Errorf("dashboard: proveedores: %w", suppliers.err)
		}
		if perf.err != nil {
			return nil, fmt.Errorf("dashboard: desempeño: %w", perf.err)
		}

		byID := make(map[string]*entity.SupplierPerformance, len(perf.v))
		totalOrders, onTime := 0, 0
		out := &dto.SupplierDashboardDTO{TopSuppliers: []dto.SupplierResponse{}}
		for i := range perf.v {
			p := &perf.v[i]
			byID[p.SupplierID] = p
			totalOrders += p.TotalOrders
			onTime += p.OnTimeOrders
			out.TotalSpent = out.TotalSpent.Add(p.TotalSpent)
		}
		out.OnTimeDeliveryRate = entity.OnTimeRate(onTime, totalOrders)
		ranked := make([]*entity.Supplier, 0, len(suppliers.v))
		for _, s := range suppliers.v {
			out.TotalSuppliers++
			if s.IsActive {
				out.ActiveSuppliers++
			}
			if byID[s.ID] != nil {
				ranked = append(ranked, s)
			}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return byID[ranked[i].ID].TotalSpent.GreaterThan(byID[ranked[j].ID].TotalSpent)
		})
		if len(ranked) > dashboardSuppliers {
			ranked = ranked[:dashboardSuppliers]
		}
		for _, s := range ranked {
			out.TopSuppliers = append(out.TopSuppliers, *usecase.ToSupplierResponse(s, byID[s.ID]))
		}
		out.TotalSpent = out.TotalSpent.Round(2)
		return out, nil
	})
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
