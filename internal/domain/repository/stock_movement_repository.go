package repository

import (
	"context"
	"time"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// MovementFilter filtros de la bitácora de movimientos.
type MovementFilter struct {
	BranchID  string
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para movimientos de inventario (DIP).
// No expone Update ni Delete: la bitácora sólo crece.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	List(ctx context.Context, tenantID string, filter MovementFilter) ([]*entity.StockMovement, error)
}

// StockTransferRepository persistencia de traslados entre sucursales.
type StockTransferRepository interface {
	Create(ctx context.Context, transfer *entity.StockTransfer) error
	// List devuelve traslados donde branchID es origen o destino (vacío = todos).
	List(ctx context.Context, tenantID, branchID string, limit, offset int) ([]*entity.StockTransfer, error)
}
