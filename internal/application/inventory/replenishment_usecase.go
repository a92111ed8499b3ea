package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición de una sucursal.
// Combina los niveles en o bajo el mínimo con el volumen de ventas reciente para priorizar.
type ReplenishmentUseCase struct {
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
	}
}

// GenerateReplenishmentList devuelve los productos en o bajo su mínimo con la cantidad sugerida
// de pedido (hasta 1.5 × mínimo, respetando el mínimo de compra del proveedor principal).
// branchID vacío considera todas las sucursales.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, tenantID, branchID string) ([]dto.ReplenishmentSuggestionDTO, error) {
	// 1. Niveles en o bajo el mínimo
	rows, err := uc.stockRepo.List(ctx, tenantID, repository.StockFilter{BranchID: branchID, LowStockOnly: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	// 2. Unidades vendidas por producto en los últimos 90 días
	end := time.Now()
	start := end.AddDate(0, 0, -90)
	top, err := uc.analyticsRepo.GetTopProducts(ctx, tenantID, start, end, 500)
	if err != nil {
		return nil, err
	}
	soldByID := make(map[string]decimal.Decimal, len(top))
	for _, t := range top {
		soldByID[t.ProductID] = t.UnitsSold
	}

	// 3. Sugerencias
	factor := decimal.NewFromFloat(1.5)
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(rows))
	for _, r := range rows {
		if !ToStockLevelResponse(r).IsLowStock {
			continue
		}
		ideal := r.MinStockLevel.Mul(factor).Ceil()
		qty := ideal.Sub(r.CurrentStock)
		if qty.IsNegative() {
			qty = decimal.Zero
		}

		s := dto.ReplenishmentSuggestionDTO{
			ProductID:           r.ProductID,
			SKU:                 r.SKU,
			ProductName:         r.ProductName,
			BranchID:            r.BranchID,
			CurrentStock:        r.CurrentStock,
			MinStockLevel:       r.MinStockLevel,
			IdealStock:          ideal,
			UnitCost:            r.CostPrice,
			UnitsSoldLast90Days: soldByID[r.ProductID],
		}
		if p, err := uc.productRepo.GetByID(ctx, tenantID, r.ProductID); err == nil && p != nil {
			if ps := p.PrimarySupplier(); ps != nil {
				s.SupplierID = ps.SupplierID
				s.SupplierName = ps.SupplierName
				if qty.IsPositive() && qty.LessThan(ps.MinimumOrderQuantity) {
					qty = ps.MinimumOrderQuantity
				}
			}
		}
		s.SuggestedOrderQty = qty
		s.EstimatedOrderCost = qty.Mul(r.CostPrice).Round(2)
		suggestions = append(suggestions, s)
	}

	// 4. Ordenar: agotados primero, luego mayor volumen de ventas, luego mayor déficit.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.CurrentStock.IsZero() != b.CurrentStock.IsZero() {
			return a.CurrentStock.IsZero()
		}
		if !a.UnitsSoldLast90Days.Equal(b.UnitsSoldLast90Days) {
			return a.UnitsSoldLast90Days.GreaterThan(b.UnitsSoldLast90Days)
		}
		defA := a.MinStockLevel.Sub(a.CurrentStock)
		defB := b.MinStockLevel.Sub(b.CurrentStock)
		return defA.GreaterThan(defB)
	})

	// 5. Asignar prioridad (1 = más urgente)
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
