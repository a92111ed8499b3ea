package apptest

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

func page[T any](items []T, limit, offset int) []T {
	if offset > len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func cloneProduct(p entity.Product) *entity.Product {
	p.Suppliers = slices.Clone(p.Suppliers)
	return &p
}

// ── products ─────────────────────────────────────────────────────────────────

// ProductRepo fake de repository.ProductRepository.
type ProductRepo struct{ s *Store }

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo devuelve el repositorio de productos.
func (s *Store) ProductRepo() *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	if p.SKU != "" {
		for _, o := range r.s.Products {
			if o.TenantID == p.TenantID && o.SKU == p.SKU && !o.IsDeleted {
				return domain.ErrDuplicate
			}
		}
	}
	r.s.Products[p.ID] = *cloneProduct(*p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Products[id]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *ProductRepo) GetForUpdate(ctx context.Context, tenantID, id string) (*entity.Product, error) {
	return r.GetByID(ctx, tenantID, id)
}

func (r *ProductRepo) GetBySKU(_ context.Context, tenantID, sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.Products {
		if p.TenantID == tenantID && p.SKU == sku && !p.IsDeleted {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.Products[p.ID]
	if !ok || cur.TenantID != p.TenantID {
		return domain.ErrNotFound
	}
	next := *cloneProduct(*p)
	next.Quantity = cur.Quantity
	r.s.Products[p.ID] = next
	return nil
}

func (r *ProductRepo) AddQuantity(_ context.Context, tenantID, id string, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Products[id]
	if !ok || p.TenantID != tenantID {
		return domain.ErrNotFound
	}
	p.Quantity = decimal.Max(decimal.Zero, p.Quantity.Add(delta))
	r.s.Products[id] = p
	return nil
}

func (r *ProductRepo) List(_ context.Context, tenantID string, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	search := strings.ToLower(f.Search)
	for _, p := range r.s.Products {
		if p.TenantID != tenantID || (p.IsDeleted && !f.IncludeDeleted) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) && !strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, f.Limit, f.Offset), nil
}

func (r *ProductRepo) ListActiveIDs(_ context.Context, tenantID string) ([]repository.ProductStockSeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.ProductStockSeed
	for _, p := range r.s.Products {
		if p.TenantID == tenantID && !p.IsDeleted {
			out = append(out, repository.ProductStockSeed{ProductID: p.ID, MinStockLevel: p.MinStockLevel})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *ProductRepo) SoftDelete(_ context.Context, tenantID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Products[id]
	if !ok || p.TenantID != tenantID || p.IsDeleted {
		return domain.ErrNotFound
	}
	now := time.Now()
	p.IsDeleted = true
	p.DeletedAt = &now
	r.s.Products[id] = p
	return nil
}

// ── stock ────────────────────────────────────────────────────────────────────

// StockRepo fake de repository.StockRepository.
type StockRepo struct{ s *Store }

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo devuelve el repositorio de stock.
func (s *Store) StockRepo() *StockRepo { return &StockRepo{s: s} }

func (r *StockRepo) Get(_ context.Context, tenantID, productID, branchID string) (*entity.StockLevel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.Stock[stockKey(tenantID, productID, branchID)]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *StockRepo) GetForUpdate(_ context.Context, tenantID, productID, branchID string) (*entity.StockLevel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.Stock[stockKey(tenantID, productID, branchID)]
	if !ok {
		return &entity.StockLevel{TenantID: tenantID, ProductID: productID, BranchID: branchID}, nil
	}
	return &l, nil
}

func (r *StockRepo) Upsert(_ context.Context, l *entity.StockLevel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Stock[stockKey(l.TenantID, l.ProductID, l.BranchID)] = *l
	return nil
}

func (r *StockRepo) CreateIfMissing(_ context.Context, l *entity.StockLevel) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := stockKey(l.TenantID, l.ProductID, l.BranchID)
	if _, ok := r.s.Stock[k]; ok {
		return false, nil
	}
	r.s.Stock[k] = *l
	return true, nil
}

func (r *StockRepo) views(tenantID string, f repository.StockFilter) []*entity.StockLevelView {
	var out []*entity.StockLevelView
	for _, l := range r.s.Stock {
		if l.TenantID != tenantID {
			continue
		}
		if (f.BranchID != "" && l.BranchID != f.BranchID) || (f.ProductID != "" && l.ProductID != f.ProductID) {
			continue
		}
		p := r.s.Products[l.ProductID]
		if p.IsDeleted {
			continue
		}
		if f.LowStockOnly && !inventory.ClassifyStock(l.AvailableStock(), l.MinStockLevel).IsLowStock {
			continue
		}
		out = append(out, &entity.StockLevelView{
			StockLevel:  l,
			ProductName: p.Name,
			SKU:         p.SKU,
			Category:    p.Category,
			BranchName:  r.s.Branches[l.BranchID].Name,
			CostPrice:   p.CostPrice,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BranchID != out[j].BranchID {
			return out[i].BranchID < out[j].BranchID
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out
}

func (r *StockRepo) List(_ context.Context, tenantID string, f repository.StockFilter) ([]*entity.StockLevelView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.views(tenantID, f), f.Limit, f.Offset), nil
}

func (r *StockRepo) BranchStats(_ context.Context, tenantID string) ([]entity.BranchStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byBranch := map[string]*entity.BranchStats{}
	var order []string
	for _, b := range r.s.Branches {
		if b.TenantID == tenantID && b.IsActive {
			byBranch[b.ID] = &entity.BranchStats{BranchID: b.ID, BranchName: b.Name}
			order = append(order, b.ID)
		}
	}
	for _, v := range r.views(tenantID, repository.StockFilter{}) {
		st, ok := byBranch[v.BranchID]
		if !ok {
			continue
		}
		st.TotalProducts++
		st.TotalUnits = st.TotalUnits.Add(v.CurrentStock)
		st.InventoryValue = st.InventoryValue.Add(v.CurrentStock.Mul(v.CostPrice))
		c := inventory.ClassifyStock(v.AvailableStock(), v.MinStockLevel)
		if c.IsLowStock {
			st.LowStockCount++
		}
		if c.IsOutOfStock {
			st.OutOfStockCount++
		}
	}
	sort.Strings(order)
	out := make([]entity.BranchStats, 0, len(order))
	for _, id := range order {
		out = append(out, *byBranch[id])
	}
	return out, nil
}

// ── movements / transfers ────────────────────────────────────────────────────

// MovementRepo fake de repository.StockMovementRepository.
type MovementRepo struct{ s *Store }

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo devuelve el repositorio de movimientos.
func (s *Store) MovementRepo() *MovementRepo { return &MovementRepo{s: s} }

func (r *MovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Movements = append(r.s.Movements, *m)
	return nil
}

func (r *MovementRepo) List(_ context.Context, tenantID string, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockMovement
	for i := len(r.s.Movements) - 1; i >= 0; i-- {
		m := r.s.Movements[i]
		if m.TenantID != tenantID {
			continue
		}
		if (f.BranchID != "" && m.BranchID != f.BranchID) || (f.ProductID != "" && m.ProductID != f.ProductID) || (f.Type != "" && m.Type != f.Type) {
			continue
		}
		if (f.From != nil && m.CreatedAt.Before(*f.From)) || (f.To != nil && m.CreatedAt.After(*f.To)) {
			continue
		}
		m.ProductName = r.s.Products[m.ProductID].Name
		out = append(out, &m)
	}
	return page(out, f.Limit, f.Offset), nil
}

// TransferRepo fake de repository.StockTransferRepository.
type TransferRepo struct{ s *Store }

var _ repository.StockTransferRepository = (*TransferRepo)(nil)

// TransferRepo devuelve el repositorio de traslados.
func (s *Store) TransferRepo() *TransferRepo { return &TransferRepo{s: s} }

func (r *TransferRepo) Create(_ context.Context, t *entity.StockTransfer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Transfers = append(r.s.Transfers, *t)
	return nil
}

func (r *TransferRepo) List(_ context.Context, tenantID, branchID string, limit, offset int) ([]*entity.StockTransfer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockTransfer
	for i := len(r.s.Transfers) - 1; i >= 0; i-- {
		t := r.s.Transfers[i]
		if t.TenantID != tenantID {
			continue
		}
		if branchID != "" && t.FromBranchID != branchID && t.ToBranchID != branchID {
			continue
		}
		out = append(out, &t)
	}
	return page(out, limit, offset), nil
}
