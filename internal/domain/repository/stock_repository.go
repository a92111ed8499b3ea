package repository

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// StockFilter filtros de consulta de niveles de stock.
type StockFilter struct {
	BranchID     string
	ProductID    string
	LowStockOnly bool
	Limit        int
	Offset       int
}

// StockRepository define el puerto para consultar/actualizar stock por sucursal+producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(ctx context.Context, tenantID, productID, branchID string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Si no existe la crea en cero y la devuelve con UpdatedAt vacío.
	GetForUpdate(ctx context.Context, tenantID, productID, branchID string) (*entity.StockLevel, error)
	Upsert(ctx context.Context, stock *entity.StockLevel) error
	// CreateIfMissing inserta la fila sólo si no existe. created=false si ya estaba.
	CreateIfMissing(ctx context.Context, stock *entity.StockLevel) (created bool, err error)
	List(ctx context.Context, tenantID string, filter StockFilter) ([]*entity.StockLevelView, error)
	// BranchStats agregados por sucursal activa (productos, unidades, valor, stock bajo/agotado).
	BranchStats(ctx context.Context, tenantID string) ([]entity.BranchStats, error)
}
