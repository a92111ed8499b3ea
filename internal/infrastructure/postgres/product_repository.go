package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, tenant_id, name, sku, category, cost_price, selling_price, quantity,
	min_stock_level, unit, suppliers, is_deleted, deleted_at, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.SKU, &p.Category, &p.CostPrice, &p.SellingPrice,
		&p.Quantity, &p.MinStockLevel, &p.Unit, &p.Suppliers, &p.IsDeleted, &p.DeletedAt,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func suppliersArg(s []entity.ProductSupplier) []entity.ProductSupplier {
	if s == nil {
		return []entity.ProductSupplier{}
	}
	return s
}

// Create persiste un nuevo producto. Un SKU repetido dentro del tenant devuelve ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.TenantID, p.Name, p.SKU, p.Category, p.CostPrice, p.SellingPrice, p.Quantity,
		p.MinStockLevel, p.Unit, suppliersArg(p.Suppliers), p.IsDeleted, p.DeletedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto (incluidos los borrados). nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND id = $2`, tenantID, id)
}

// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, tenantID, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, tenantID, id)
}

// GetBySKU busca un producto no borrado por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, tenantID, sku string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products
		WHERE tenant_id = $1 AND sku = $2 AND NOT is_deleted`, tenantID, sku)
}

func (r *ProductRepo) get(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los datos del producto. No toca quantity: la cantidad sólo cambia con AddQuantity.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $3, sku = $4, category = $5, cost_price = $6, selling_price = $7,
			min_stock_level = $8, unit = $9, suppliers = $10, updated_at = $11
		WHERE tenant_id = $1 AND id = $2 AND NOT is_deleted`
	cmd, err := r.q.Exec(ctx, query,
		p.TenantID, p.ID, p.Name, p.SKU, p.Category, p.CostPrice, p.SellingPrice,
		p.MinStockLevel, p.Unit, suppliersArg(p.Suppliers), p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddQuantity suma delta a la cantidad en mano sin bajar de cero, en una sola sentencia.
func (r *ProductRepo) AddQuantity(ctx context.Context, tenantID, id string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = GREATEST(quantity + $3, 0), updated_at = now()
		 WHERE tenant_id = $1 AND id = $2`,
		tenantID, id, delta,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos por nombre con filtros opcionales de categoría y búsqueda.
func (r *ProductRepo) List(ctx context.Context, tenantID string, f repository.ProductFilter) ([]*entity.Product, error) {
	var (
		where = []string{"tenant_id = $1"}
		args  = []any{tenantID}
	)
	if !f.IncludeDeleted {
		where = append(where, "NOT is_deleted")
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("lower(category) = lower($%d)", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+strings.ToLower(s)+"%")
		where = append(where, fmt.Sprintf("(lower(name) LIKE $%d OR lower(sku) LIKE $%d)", len(args), len(args)))
	}
	args = append(args, limitArg(f.Limit), f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY name LIMIT $%d OFFSET $%d`,
		productColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListActiveIDs ids y mínimo de stock de los productos no borrados.
func (r *ProductRepo) ListActiveIDs(ctx context.Context, tenantID string) ([]repository.ProductStockSeed, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, min_stock_level FROM products WHERE tenant_id = $1 AND NOT is_deleted ORDER BY id`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list product ids: %w", err)
	}
	defer rows.Close()
	var out []repository.ProductStockSeed
	for rows.Next() {
		var s repository.ProductStockSeed
		if err := rows.Scan(&s.ProductID, &s.MinStockLevel); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SoftDelete marca el producto como borrado. ErrNotFound si no existe o ya estaba borrado.
func (r *ProductRepo) SoftDelete(ctx context.Context, tenantID, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET is_deleted = TRUE, deleted_at = now(), updated_at = now()
		 WHERE tenant_id = $1 AND id = $2 AND NOT is_deleted`,
		tenantID, id,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
