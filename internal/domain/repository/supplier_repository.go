package repository

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Supplier, error)
}

// SupplierOrderRepository compras recibidas; base de las métricas de desempeño.
type SupplierOrderRepository interface {
	Create(ctx context.Context, order *entity.SupplierOrder) error
	// Performance agrega las órdenes por proveedor (una entrada por proveedor con órdenes).
	Performance(ctx context.Context, tenantID string) ([]entity.SupplierPerformance, error)
}
