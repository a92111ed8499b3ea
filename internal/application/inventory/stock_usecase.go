// Package inventory contiene los casos de uso del motor de stock: ventas, ajustes, traslados,
// compras e inicialización de sucursales. Toda mutación corre en una transacción con bloqueo
// de fila (SELECT FOR UPDATE) sobre el nivel de stock producto+sucursal.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
	"github.com/chukwumela909/Web-App-sub001/pkg/logger"
)

// Deps dependencias de StockUseCase. Cache, Activity y Logger son opcionales.
type Deps struct {
	TxRunner    ports.TxRunner
	Products    repository.ProductRepository
	Branches    repository.BranchRepository
	Suppliers   repository.SupplierRepository
	Stock       repository.StockRepository
	Movements   repository.StockMovementRepository
	Transfers   repository.StockTransferRepository
	Cache       ports.Cache
	Activity    ports.ActivityRecorder
	Logger      *logger.Logger
	StrictSales bool // true: una venta sin stock suficiente falla en vez de dejar el stock en cero
}

// StockUseCase registra ventas, ajustes, traslados y compras de forma transaccional.
type StockUseCase struct {
	d   Deps
	now func() time.Time
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(d Deps) *StockUseCase {
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	return &StockUseCase{d: d, now: time.Now}
}

// SaleStockResult efecto de una venta sobre el stock de un producto en una sucursal.
type SaleStockResult struct {
	ProductID     string
	BranchID      string
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	Shortfall     decimal.Decimal // unidades vendidas sin stock (0 si alcanzó)
}

// RecordSale descuenta qty del producto en la sucursal: nuevo = max(0, actual − qty).
// Se ejecuta en su propia transacción; para ventas multi-ítem usar RecordSaleInTx.
func (uc *StockUseCase) RecordSale(
	ctx context.Context,
	actor ports.Actor,
	branchID, productID string,
	qty decimal.Decimal,
	referenceID string,
) (*SaleStockResult, error) {
	if productID == "" || branchID == "" || !qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.activeBranch(ctx, actor.TenantID, branchID); err != nil {
		return nil, err
	}
	if _, err := uc.product(ctx, actor.TenantID, productID); err != nil {
		return nil, err
	}

	var res *SaleStockResult
	err := uc.d.TxRunner.Run(ctx, func(repos ports.TxRepos) error {
		var err error
		res, err = uc.RecordSaleInTx(ctx, repos, actor, branchID, productID, qty, referenceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateDashboards(ctx, actor.TenantID)
	return res, nil
}

// RecordSaleInTx aplica la venta con los repositorios de la transacción del llamador.
// Bloquea la fila de stock, la deja en max(0, actual − qty), descuenta del producto lo mismo que
// bajó la sucursal y agrega un movimiento SALE. Con StrictSales un faltante devuelve ErrInsufficientStock.
func (uc *StockUseCase) RecordSaleInTx(
	ctx context.Context,
	repos ports.TxRepos,
	actor ports.Actor,
	branchID, productID string,
	qty decimal.Decimal,
	referenceID string,
) (*SaleStockResult, error) {
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()

	level, err := repos.Stock.GetForUpdate(ctx, actor.TenantID, productID, branchID)
	if err != nil {
		return nil, err
	}
	if level.UpdatedAt.IsZero() {
		p, err := repos.Products.GetByID(ctx, actor.TenantID, productID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			level.MinStockLevel = p.MinStockLevel
		}
	}
	prev := level.CurrentStock
	newQty, shortfall := inventory.ApplySale(prev, qty)
	if shortfall.IsPositive() && uc.d.StrictSales {
		return nil, fmt.Errorf("%w: producto %s, disponible %s, solicitado %s",
			domain.ErrInsufficientStock, productID, prev.String(), qty.String())
	}

	level.CurrentStock = newQty
	level.UpdatedAt = now
	if err := repos.Stock.Upsert(ctx, level); err != nil {
		return nil, err
	}
	// Sólo lo que salió de la sucursal; el faltante no existía en stock.
	if err := repos.Products.AddQuantity(ctx, actor.TenantID, productID, newQty.Sub(prev)); err != nil {
		return nil, err
	}

	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TenantID:      actor.TenantID,
		ProductID:     productID,
		BranchID:      branchID,
		Type:          entity.MovementSale,
		Quantity:      newQty.Sub(prev),
		PreviousStock: prev,
		NewStock:      newQty,
		ReferenceID:   referenceID,
		CreatedBy:     actor.UserID,
		CreatedAt:     now,
	}
	if shortfall.IsPositive() {
		mov.Notes = fmt.Sprintf("venta con faltante: %s unidades sin stock", shortfall.String())
		uc.d.Logger.Warn().
			Str("tenant_id", actor.TenantID).
			Str("product_id", productID).
			Str("branch_id", branchID).
			Str("reference_id", referenceID).
			Str("shortfall", shortfall.String()).
			Msg("venta registrada con stock insuficiente; stock fijado en cero")
	}
	if err := repos.Movements.Create(ctx, mov); err != nil {
		return nil, err
	}

	return &SaleStockResult{
		ProductID:     productID,
		BranchID:      branchID,
		PreviousStock: prev,
		NewStock:      newQty,
		Shortfall:     shortfall,
	}, nil
}

// AdjustStockInput ajuste manual con delta con signo y motivo obligatorio.
type AdjustStockInput struct {
	ProductID string
	BranchID  string
	Delta     decimal.Decimal
	Reason    string // código o etiqueta del vocabulario de motivos
	Notes     string
}

// AdjustStock aplica un delta con signo al stock de la sucursal. El resultado no puede ser negativo.
// Escribe stock, cantidad del producto y el movimiento ADJUSTMENT en la misma transacción.
func (uc *StockUseCase) AdjustStock(ctx context.Context, actor ports.Actor, in AdjustStockInput) (*entity.StockMovement, error) {
	if in.ProductID == "" || in.BranchID == "" || in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	reason, err := inventory.ParseReason(in.Reason)
	if err != nil {
		return nil, err
	}
	if _, err := uc.activeBranch(ctx, actor.TenantID, in.BranchID); err != nil {
		return nil, err
	}
	product, err := uc.product(ctx, actor.TenantID, in.ProductID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var mov *entity.StockMovement
	err = uc.d.TxRunner.Run(ctx, func(repos ports.TxRepos) error {
		level, err := repos.Stock.GetForUpdate(ctx, actor.TenantID, in.ProductID, in.BranchID)
		if err != nil {
			return err
		}
		if level.UpdatedAt.IsZero() {
			level.MinStockLevel = product.MinStockLevel
		}
		prev := level.CurrentStock
		newQty, ok := inventory.ApplyDelta(prev, in.Delta)
		if !ok {
			return fmt.Errorf("%w: el ajuste dejaría el stock en %s", domain.ErrInsufficientStock, prev.Add(in.Delta).String())
		}
		level.CurrentStock = newQty
		level.UpdatedAt = now
		if err := repos.Stock.Upsert(ctx, level); err != nil {
			return err
		}
		if err := repos.Products.AddQuantity(ctx, actor.TenantID, in.ProductID, in.Delta); err != nil {
			return err
		}
		mov = &entity.StockMovement{
			ID:            uuid.New().String(),
			TenantID:      actor.TenantID,
			ProductID:     in.ProductID,
			BranchID:      in.BranchID,
			Type:          entity.MovementAdjustment,
			Quantity:      in.Delta,
			PreviousStock: prev,
			NewStock:      newQty,
			Reason:        string(reason),
			Notes:         strings.TrimSpace(in.Notes),
			CreatedBy:     actor.UserID,
			CreatedAt:     now,
		}
		return repos.Movements.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	mov.ProductName = product.Name

	uc.invalidateDashboards(ctx, actor.TenantID)
	uc.record(ctx, actor, "stock.adjust", "product", in.ProductID, map[string]any{
		"branch_id": in.BranchID,
		"delta":     in.Delta.String(),
		"reason":    string(reason),
	})
	uc.d.Logger.Info().
		Str("tenant_id", actor.TenantID).
		Str("product_id", in.ProductID).
		Str("branch_id", in.BranchID).
		Str("delta", in.Delta.String()).
		Str("reason", string(reason)).
		Msg("stock ajustado")
	return mov, nil
}

// TransferInput traslado entre dos sucursales del tenant.
type TransferInput struct {
	ProductID    string
	FromBranchID string
	ToBranchID   string
	Quantity     decimal.Decimal
	Notes        string
}

// TransferStock resta en origen y suma en destino en una sola transacción.
// El origen debe tener stock disponible suficiente; la fila destino se crea si no existe.
func (uc *StockUseCase) TransferStock(ctx context.Context, actor ports.Actor, in TransferInput) (*entity.StockTransfer, error) {
	if in.ProductID == "" || in.FromBranchID == "" || in.ToBranchID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromBranchID == in.ToBranchID || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	from, err := uc.activeBranch(ctx, actor.TenantID, in.FromBranchID)
	if err != nil {
		return nil, err
	}
	to, err := uc.activeBranch(ctx, actor.TenantID, in.ToBranchID)
	if err != nil {
		return nil, err
	}
	product, err := uc.product(ctx, actor.TenantID, in.ProductID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	transfer := &entity.StockTransfer{
		ID:           uuid.New().String(),
		TenantID:     actor.TenantID,
		ProductID:    in.ProductID,
		FromBranchID: in.FromBranchID,
		ToBranchID:   in.ToBranchID,
		Quantity:     in.Quantity,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
	}
	transfer.TransferNumber = documentNumber("TRF", now, transfer.ID)

	err = uc.d.TxRunner.Run(ctx, func(repos ports.TxRepos) error {
		// Bloqueo en orden fijo de sucursal para que dos traslados cruzados no se bloqueen mutuamente.
		levels := make(map[string]*entity.StockLevel, 2)
		ids := []string{in.FromBranchID, in.ToBranchID}
		sort.Strings(ids)
		for _, id := range ids {
			l, err := repos.Stock.GetForUpdate(ctx, actor.TenantID, in.ProductID, id)
			if err != nil {
				return err
			}
			if l.UpdatedAt.IsZero() {
				l.MinStockLevel = product.MinStockLevel
			}
			levels[id] = l
		}
		src, dst := levels[in.FromBranchID], levels[in.ToBranchID]
		if src.AvailableStock().LessThan(in.Quantity) {
			return fmt.Errorf("%w: disponible en origen %s", domain.ErrInsufficientStock, src.AvailableStock().String())
		}

		srcPrev, dstPrev := src.CurrentStock, dst.CurrentStock
		src.CurrentStock = srcPrev.Sub(in.Quantity)
		dst.CurrentStock = dstPrev.Add(in.Quantity)
		src.UpdatedAt, dst.UpdatedAt = now, now
		if err := repos.Stock.Upsert(ctx, src); err != nil {
			return err
		}
		if err := repos.Stock.Upsert(ctx, dst); err != nil {
			return err
		}
		if err := repos.Transfers.Create(ctx, transfer); err != nil {
			return err
		}
		out := &entity.StockMovement{
			ID:            uuid.New().String(),
			TenantID:      actor.TenantID,
			ProductID:     in.ProductID,
			BranchID:      in.FromBranchID,
			Type:          entity.MovementTransferOut,
			Quantity:      in.Quantity.Neg(),
			PreviousStock: srcPrev,
			NewStock:      src.CurrentStock,
			ReferenceID:   transfer.ID,
			Notes:         transfer.Notes,
			CreatedBy:     actor.UserID,
			CreatedAt:     now,
		}
		if err := repos.Movements.Create(ctx, out); err != nil {
			return err
		}
		inMov := &entity.StockMovement{
			ID:            uuid.New().String(),
			TenantID:      actor.TenantID,
			ProductID:     in.ProductID,
			BranchID:      in.ToBranchID,
			Type:          entity.MovementTransferIn,
			Quantity:      in.Quantity,
			PreviousStock: dstPrev,
			NewStock:      dst.CurrentStock,
			ReferenceID:   transfer.ID,
			Notes:         transfer.Notes,
			CreatedBy:     actor.UserID,
			CreatedAt:     now,
		}
		return repos.Movements.Create(ctx, inMov)
	})
	if err != nil {
		return nil, err
	}
	transfer.ProductName = product.Name
	transfer.FromBranchName = from.Name
	transfer.ToBranchName = to.Name

	uc.invalidateDashboards(ctx, actor.TenantID)
	uc.record(ctx, actor, "stock.transfer", "transfer", transfer.ID, map[string]any{
		"product_id":     in.ProductID,
		"from_branch_id": in.FromBranchID,
		"to_branch_id":   in.ToBranchID,
		"quantity":       in.Quantity.String(),
	})
	return transfer, nil
}

// PurchaseInput recepción de mercancía de un proveedor.
type PurchaseInput struct {
	SupplierID   string
	ProductID    string
	BranchID     string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	ExpectedDate *time.Time
	Rating       *decimal.Decimal
	Notes        string
}

// ReceivePurchase suma stock, recalcula el costo promedio ponderado del producto, actualiza el
// vínculo producto-proveedor y deja el movimiento PURCHASE y la orden del proveedor.
func (uc *StockUseCase) ReceivePurchase(ctx context.Context, actor ports.Actor, in PurchaseInput) (*entity.SupplierOrder, error) {
	if in.SupplierID == "" || in.ProductID == "" || in.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Rating != nil && (in.Rating.LessThan(decimal.NewFromInt(1)) || in.Rating.GreaterThan(decimal.NewFromInt(5))) {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.d.Suppliers.GetByID(ctx, actor.TenantID, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.activeBranch(ctx, actor.TenantID, in.BranchID); err != nil {
		return nil, err
	}

	now := uc.now()
	order := &entity.SupplierOrder{
		ID:           uuid.New().String(),
		TenantID:     actor.TenantID,
		SupplierID:   in.SupplierID,
		ProductID:    in.ProductID,
		BranchID:     in.BranchID,
		Quantity:     in.Quantity,
		UnitCost:     in.UnitCost,
		ExpectedDate: in.ExpectedDate,
		ReceivedAt:   now,
		Rating:       in.Rating,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
	}

	err = uc.d.TxRunner.Run(ctx, func(repos ports.TxRepos) error {
		product, err := repos.Products.GetForUpdate(ctx, actor.TenantID, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.IsDeleted {
			return domain.ErrNotFound
		}
		level, err := repos.Stock.GetForUpdate(ctx, actor.TenantID, in.ProductID, in.BranchID)
		if err != nil {
			return err
		}
		if level.UpdatedAt.IsZero() {
			level.MinStockLevel = product.MinStockLevel
		}

		product.CostPrice = inventory.WeightedAverageCost(product.Quantity, product.CostPrice, in.Quantity, in.UnitCost)
		product.Suppliers = applySupplierPurchase(product.Suppliers, supplier, in.UnitCost)
		product.UpdatedAt = now
		if err := repos.Products.Update(ctx, product); err != nil {
			return err
		}
		if err := repos.Products.AddQuantity(ctx, actor.TenantID, in.ProductID, in.Quantity); err != nil {
			return err
		}

		prev := level.CurrentStock
		level.CurrentStock = prev.Add(in.Quantity)
		level.UpdatedAt = now
		if err := repos.Stock.Upsert(ctx, level); err != nil {
			return err
		}
		if err := repos.SupplierOrders.Create(ctx, order); err != nil {
			return err
		}
		return repos.Movements.Create(ctx, &entity.StockMovement{
			ID:            uuid.New().String(),
			TenantID:      actor.TenantID,
			ProductID:     in.ProductID,
			BranchID:      in.BranchID,
			Type:          entity.MovementPurchase,
			Quantity:      in.Quantity,
			PreviousStock: prev,
			NewStock:      level.CurrentStock,
			ReferenceID:   order.ID,
			Notes:         strings.TrimSpace(in.Notes),
			CreatedBy:     actor.UserID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateDashboards(ctx, actor.TenantID)
	uc.record(ctx, actor, "supplier.purchase", "supplier_order", order.ID, map[string]any{
		"supplier_id": in.SupplierID,
		"product_id":  in.ProductID,
		"quantity":    in.Quantity.String(),
		"unit_cost":   in.UnitCost.String(),
	})
	return order, nil
}

// applySupplierPurchase actualiza precio último y promedio del proveedor en el producto.
// Si el proveedor no estaba vinculado se agrega (principal si es el primero).
func applySupplierPurchase(links []entity.ProductSupplier, supplier *entity.Supplier, unitCost decimal.Decimal) []entity.ProductSupplier {
	for i := range links {
		if links[i].SupplierID != supplier.ID {
			continue
		}
		n := decimal.NewFromInt(int64(links[i].PurchaseCount))
		links[i].AveragePurchasePrice = links[i].AveragePurchasePrice.Mul(n).Add(unitCost).
			Div(n.Add(decimal.NewFromInt(1))).Round(4)
		links[i].LastPurchasePrice = unitCost
		links[i].PurchaseCount++
		links[i].SupplierName = supplier.Name
		return links
	}
	return append(links, entity.ProductSupplier{
		SupplierID:           supplier.ID,
		SupplierName:         supplier.Name,
		IsPrimary:            len(links) == 0,
		LastPurchasePrice:    unitCost,
		AveragePurchasePrice: unitCost,
		PurchaseCount:        1,
	})
}

// InitializeResult conteo de filas creadas y omitidas.
type InitializeResult struct {
	Created int
	Skipped int
}

// InitializeInventory crea una fila de stock por cada producto activo que aún no tenga fila en la
// sucursal. Es idempotente: las filas existentes se omiten y su stock no cambia.
func (uc *StockUseCase) InitializeInventory(ctx context.Context, actor ports.Actor, branchID string, defaultStock decimal.Decimal) (*InitializeResult, error) {
	if branchID == "" || defaultStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.activeBranch(ctx, actor.TenantID, branchID); err != nil {
		return nil, err
	}
	seeds, err := uc.d.Products.ListActiveIDs(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	res := &InitializeResult{}
	err = uc.d.TxRunner.Run(ctx, func(repos ports.TxRepos) error {
		*res = InitializeResult{}
		for _, seed := range seeds {
			created, err := repos.Stock.CreateIfMissing(ctx, &entity.StockLevel{
				TenantID:      actor.TenantID,
				ProductID:     seed.ProductID,
				BranchID:      branchID,
				CurrentStock:  defaultStock,
				ReservedStock: decimal.Zero,
				MinStockLevel: seed.MinStockLevel,
				UpdatedAt:     now,
			})
			if err != nil {
				return err
			}
			if !created {
				res.Skipped++
				continue
			}
			res.Created++
			if defaultStock.IsZero() {
				continue
			}
			if err := repos.Products.AddQuantity(ctx, actor.TenantID, seed.ProductID, defaultStock); err != nil {
				return err
			}
			if err := repos.Movements.Create(ctx, &entity.StockMovement{
				ID:            uuid.New().String(),
				TenantID:      actor.TenantID,
				ProductID:     seed.ProductID,
				BranchID:      branchID,
				Type:          entity.MovementAdjustment,
				Quantity:      defaultStock,
				PreviousStock: decimal.Zero,
				NewStock:      defaultStock,
				Reason:        string(inventory.ReasonInitial),
				CreatedBy:     actor.UserID,
				CreatedAt:     now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Created > 0 {
		uc.invalidateDashboards(ctx, actor.TenantID)
	}
	uc.record(ctx, actor, "inventory.initialize", "branch", branchID, map[string]any{
		"created":       res.Created,
		"skipped":       res.Skipped,
		"default_stock": defaultStock.String(),
	})
	uc.d.Logger.Info().
		Str("tenant_id", actor.TenantID).
		Str("branch_id", branchID).
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Msg("inventario de sucursal inicializado")
	return res, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (uc *StockUseCase) activeBranch(ctx context.Context, tenantID, branchID string) (*entity.Branch, error) {
	b, err := uc.d.Branches.GetByID(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !b.IsActive {
		return nil, fmt.Errorf("%w: la sucursal %s está inactiva", domain.ErrConflict, branchID)
	}
	return b, nil
}

func (uc *StockUseCase) product(ctx context.Context, tenantID, productID string) (*entity.Product, error) {
	p, err := uc.d.Products.GetByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// InvalidateDashboards borra los dashboards cacheados del tenant. Un fallo de caché sólo se registra.
func (uc *StockUseCase) InvalidateDashboards(ctx context.Context, tenantID string) {
	uc.invalidateDashboards(ctx, tenantID)
}

func (uc *StockUseCase) invalidateDashboards(ctx context.Context, tenantID string) {
	if uc.d.Cache == nil {
		return
	}
	if err := uc.d.Cache.Delete(ctx, ports.DashboardKeys(tenantID)...); err != nil {
		uc.d.Logger.Warn().Err(err).Str("tenant_id", tenantID).Msg("no se pudo invalidar la caché de dashboards")
	}
}

func (uc *StockUseCase) record(ctx context.Context, actor ports.Actor, action, resource, resourceID string, details map[string]any) {
	if uc.d.Activity == nil {
		return
	}
	uc.d.Activity.Record(ctx, actor, action, resource, resourceID, details)
}

// documentNumber PREFIX-YYYYMMDD-<primeros 8 del id>.
func documentNumber(prefix string, ts time.Time, id string) string {
	short := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, ts.UTC().Format("20060102"), short)
}
