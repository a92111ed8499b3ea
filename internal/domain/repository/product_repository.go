package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Category       string
	Search         string // nombre o SKU, sin distinguir mayúsculas
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones están acotadas al tenant.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); sólo tiene sentido dentro de una tx.
	GetForUpdate(ctx context.Context, tenantID, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, tenantID, sku string) (*entity.Product, error)
	// Update persiste los datos del producto salvo la cantidad en mano (ver AddQuantity).
	Update(ctx context.Context, product *entity.Product) error
	// AddQuantity suma delta a la cantidad en mano sin bajar de cero (una sola sentencia).
	AddQuantity(ctx context.Context, tenantID, id string, delta decimal.Decimal) error
	List(ctx context.Context, tenantID string, filter ProductFilter) ([]*entity.Product, error)
	// ListActiveIDs ids de productos no borrados, para inicializar inventario.
	ListActiveIDs(ctx context.Context, tenantID string) ([]ProductStockSeed, error)
	SoftDelete(ctx context.Context, tenantID, id string) error
}

// ProductStockSeed datos mínimos para crear filas de stock.
type ProductStockSeed struct {
	ProductID     string
	MinStockLevel decimal.Decimal
}
