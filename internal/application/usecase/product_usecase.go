package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	domaininv "github.com/chukwumela909/Web-App-sub001/internal/domain/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// StockAdjuster registra el stock inicial de un producto nuevo (implementado por inventory.StockUseCase).
type StockAdjuster interface {
	AdjustStock(ctx context.Context, actor ports.Actor, in inventory.AdjustStockInput) (*entity.StockMovement, error)
}

// ProductUseCase casos de uso CRUD para productos. Costo y stock cambian vía movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	stock    repository.StockRepository
	branches repository.BranchRepository
	adjuster StockAdjuster
	activity ports.ActivityRecorder
}

// NewProductUseCase construye el caso de uso. activity puede ser nil.
func NewProductUseCase(
	repo repository.ProductRepository,
	stock repository.StockRepository,
	branches repository.BranchRepository,
	adjuster StockAdjuster,
	activity ports.ActivityRecorder,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, stock: stock, branches: branches, adjuster: adjuster, activity: activity}
}

// Create crea un producto con cantidad cero y, si viene stock inicial, lo registra como ajuste INITIAL
// en la sucursal indicada.
func (uc *ProductUseCase) Create(ctx context.Context, actor ports.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() ||
		in.MinStockLevel.IsNegative() || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	sku := strings.TrimSpace(in.SKU)
	if sku != "" {
		existing, err := uc.repo.GetBySKU(ctx, actor.TenantID, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if in.Quantity.IsPositive() {
		if in.BranchID == "" {
			return nil, fmt.Errorf("%w: branch_id requerido para stock inicial", domain.ErrInvalidInput)
		}
		b, err := uc.branches.GetByID(ctx, actor.TenantID, in.BranchID)
		if err != nil {
			return nil, err
		}
		if b == nil || !b.IsActive {
			return nil, domain.ErrNotFound
		}
	}
	suppliers, err := toSupplierLinks(in.Suppliers)
	if err != nil {
		return nil, err
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "pieza"
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		TenantID:      actor.TenantID,
		Name:          name,
		SKU:           sku,
		Category:      normalizeLabel(in.Category),
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		Quantity:      decimal.Zero,
		MinStockLevel: in.MinStockLevel,
		Unit:          unit,
		Suppliers:     suppliers,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	if in.Quantity.IsPositive() {
		_, err := uc.adjuster.AdjustStock(ctx, actor, inventory.AdjustStockInput{
			ProductID: product.ID,
			BranchID:  in.BranchID,
			Delta:     in.Quantity,
			Reason:    string(domaininv.ReasonInitial),
			Notes:     "stock inicial al crear el producto",
		})
		if err != nil {
			return nil, fmt.Errorf("producto %s creado sin stock inicial: %w", product.ID, err)
		}
		product.Quantity = in.Quantity
	}
	uc.record(ctx, actor, "product.create", product.ID, map[string]any{"name": product.Name, "sku": product.SKU})
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con su foto de inventario por sucursal.
func (uc *ProductUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	levels, err := uc.stock.List(ctx, tenantID, repository.StockFilter{ProductID: id})
	if err != nil {
		return nil, err
	}
	product.Inventory = buildInventory(product, levels)
	return toProductResponse(product), nil
}

// buildInventory agrega las filas de stock del producto. Sin filas se clasifica por la cantidad en mano.
func buildInventory(p *entity.Product, levels []*entity.StockLevelView) *entity.ProductInventory {
	inv := &entity.ProductInventory{Branches: make([]entity.BranchStock, 0, len(levels))}
	if len(levels) == 0 {
		c := domaininv.ClassifyStock(p.Quantity, p.MinStockLevel)
		inv.TotalStock = p.Quantity
		inv.AvailableStock = p.Quantity
		inv.LowStockAlert = c.IsLowStock
		inv.OutOfStock = c.IsOutOfStock
		return inv
	}
	for _, l := range levels {
		avail := l.AvailableStock()
		c := domaininv.ClassifyStock(avail, l.MinStockLevel)
		inv.TotalStock = inv.TotalStock.Add(l.CurrentStock)
		inv.ReservedStock = inv.ReservedStock.Add(l.ReservedStock)
		inv.AvailableStock = inv.AvailableStock.Add(avail)
		if c.IsLowStock {
			inv.LowStockAlert = true
		}
		inv.Branches = append(inv.Branches, entity.BranchStock{
			BranchID:       l.BranchID,
			BranchName:     l.BranchName,
			CurrentStock:   l.CurrentStock,
			ReservedStock:  l.ReservedStock,
			AvailableStock: avail,
			IsLowStock:     c.IsLowStock,
		})
	}
	inv.OutOfStock = inv.AvailableStock.IsZero()
	return inv
}

// Update actualiza un producto. No permite modificar la cantidad (se maneja vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, actor ports.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku != "" && sku != product.SKU {
			existing, err := uc.repo.GetBySKU(ctx, actor.TenantID, sku)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
		}
		product.SKU = sku
	}
	if in.Category != nil {
		product.Category = normalizeLabel(*in.Category)
	}
	for _, v := range []*decimal.Decimal{in.CostPrice, in.SellingPrice, in.MinStockLevel} {
		if v != nil && v.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.Unit != nil {
		product.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.Suppliers != nil {
		links, err := toSupplierLinks(in.Suppliers)
		if err != nil {
			return nil, err
		}
		product.Suppliers = mergeSupplierStats(product.Suppliers, links)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "product.update", product.ID, nil)
	return toProductResponse(product), nil
}

// List lista productos del tenant con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, tenantID string, in dto.ProductFilterRequest) (*dto.ListResponse[dto.ProductResponse], error) {
	in.DefaultPage()
	list, err := uc.repo.List(ctx, tenantID, repository.ProductFilter{
		Category: normalizeLabel(in.Category),
		Search:   strings.TrimSpace(in.Search),
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ListResponse[dto.ProductResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Delete borrado lógico; las ventas y movimientos históricos conservan la referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if err := uc.repo.SoftDelete(ctx, actor.TenantID, id); err != nil {
		return err
	}
	uc.record(ctx, actor, "product.delete", id, nil)
	return nil
}

func (uc *ProductUseCase) record(ctx context.Context, actor ports.Actor, action, id string, details map[string]any) {
	if uc.activity != nil {
		uc.activity.Record(ctx, actor, action, "product", id, details)
	}
}

// toSupplierLinks valida los vínculos: sin duplicados y a lo sumo un principal.
// Si ninguno viene marcado, el primero pasa a ser el principal.
func toSupplierLinks(in []dto.ProductSupplierDTO) ([]entity.ProductSupplier, error) {
	out := make([]entity.ProductSupplier, 0, len(in))
	seen := map[string]bool{}
	primaries := 0
	for _, s := range in {
		if s.SupplierID == "" || seen[s.SupplierID] || s.LeadTimeDays < 0 || s.MinimumOrderQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		seen[s.SupplierID] = true
		if s.IsPrimary {
			primaries++
		}
		out = append(out, entity.ProductSupplier{
			SupplierID:           s.SupplierID,
			SupplierName:         strings.TrimSpace(s.SupplierName),
			IsPrimary:            s.IsPrimary,
			LastPurchasePrice:    s.LastPurchasePrice,
			AveragePurchasePrice: s.AveragePurchasePrice,
			LeadTimeDays:         s.LeadTimeDays,
			MinimumOrderQuantity: s.MinimumOrderQuantity,
		})
	}
	if primaries > 1 {
		return nil, fmt.Errorf("%w: sólo un proveedor principal", domain.ErrInvalidInput)
	}
	if primaries == 0 && len(out) > 0 {
		out[0].IsPrimary = true
	}
	return out, nil
}

// mergeSupplierStats conserva los precios y contadores de compra ya acumulados por proveedor.
func mergeSupplierStats(current, next []entity.ProductSupplier) []entity.ProductSupplier {
	byID := make(map[string]entity.ProductSupplier, len(current))
	for _, c := range current {
		byID[c.SupplierID] = c
	}
	for i, n := range next {
		c, ok := byID[n.SupplierID]
		if !ok {
			continue
		}
		next[i].PurchaseCount = c.PurchaseCount
		if n.LastPurchasePrice.IsZero() {
			next[i].LastPurchasePrice = c.LastPurchasePrice
		}
		if n.AveragePurchasePrice.IsZero() {
			next[i].AveragePurchasePrice = c.AveragePurchasePrice
		}
	}
	return next
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	suppliers := make([]dto.ProductSupplierDTO, 0, len(p.Suppliers))
	for _, s := range p.Suppliers {
		suppliers = append(suppliers, dto.ProductSupplierDTO{
			SupplierID:           s.SupplierID,
			SupplierName:         s.SupplierName,
			IsPrimary:            s.IsPrimary,
			LastPurchasePrice:    s.LastPurchasePrice,
			AveragePurchasePrice: s.AveragePurchasePrice,
			LeadTimeDays:         s.LeadTimeDays,
			MinimumOrderQuantity: s.MinimumOrderQuantity,
		})
	}
	resp := &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		Unit:          p.Unit,
		Suppliers:     suppliers,
		IsDeleted:     p.IsDeleted,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	c := domaininv.ClassifyStock(p.Quantity, p.MinStockLevel)
	resp.IsLowStock, resp.IsOutOfStock = c.IsLowStock, c.IsOutOfStock
	if inv := p.Inventory; inv != nil {
		resp.IsLowStock, resp.IsOutOfStock = inv.LowStockAlert, inv.OutOfStock
		branches := make([]dto.BranchStockDTO, 0, len(inv.Branches))
		for _, b := range inv.Branches {
			branches = append(branches, dto.BranchStockDTO{
				BranchID:       b.BranchID,
				BranchName:     b.BranchName,
				CurrentStock:   b.CurrentStock,
				ReservedStock:  b.ReservedStock,
				AvailableStock: b.AvailableStock,
				IsLowStock:     b.IsLowStock,
			})
		}
		resp.Inventory = &dto.ProductInventoryDTO{
			TotalStock:     inv.TotalStock,
			AvailableStock: inv.AvailableStock,
			ReservedStock:  inv.ReservedStock,
			InTransitStock: inv.InTransitStock,
			Branches:       branches,
			LowStockAlert:  inv.LowStockAlert,
			OutOfStock:     inv.OutOfStock,
		}
	}
	return resp
}
