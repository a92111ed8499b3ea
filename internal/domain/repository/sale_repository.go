package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas.
type SaleFilter struct {
	BranchID       string
	BranchIDs      []string // nil = sin restricción; vacío = ninguna sucursal
	From           *time.Time
	To             *time.Time
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// DailySalesResult totales de ventas de un día (sin ventas borradas).
type DailySalesResult struct {
	Date        string
	SalesCount  int
	TotalSales  decimal.Decimal
	TotalProfit decimal.Decimal
}

// SaleRepository define el puerto de persistencia para ventas multi-ítem (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Sale, error)
	Exists(ctx context.Context, tenantID, id string) (bool, error)
	List(ctx context.Context, tenantID string, filter SaleFilter) ([]*entity.Sale, error)
	SoftDelete(ctx context.Context, tenantID, id string, at time.Time) error
	// DailyTotals agrupa por Date en [from, to] (YYYY-MM-DD, inclusivo).
	DailyTotals(ctx context.Context, tenantID, from, to string) ([]DailySalesResult, error)
	// TotalsByBranch total vendido por sucursal en una fecha.
	TotalsByBranch(ctx context.Context, tenantID, date string) (map[string]decimal.Decimal, error)
}

// LegacySaleRepository lectura de ventas del modelo de un solo producto.
type LegacySaleRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.LegacySale, error)
}
