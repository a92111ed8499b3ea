// Package ports declara los puertos de salida de la capa de aplicación que no son repositorios:
// transacciones, caché, bitácora de actividad y generación de documentos.
package ports

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Products       repository.ProductRepository
	Stock          repository.StockRepository
	Movements      repository.StockMovementRepository
	Transfers      repository.StockTransferRepository
	Sales          repository.SaleRepository
	SupplierOrders repository.SupplierOrderRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
