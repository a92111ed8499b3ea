package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `tenant_id, product_id, branch_id, current_stock, reserved_stock, min_stock_level, updated_at`

func scanStock(row interface{ Scan(...any) error }, s *entity.StockLevel) error {
	return row.Scan(&s.TenantID, &s.ProductID, &s.BranchID, &s.CurrentStock, &s.ReservedStock,
		&s.MinStockLevel, &s.UpdatedAt)
}

// Get obtiene el stock de un producto en una sucursal. nil, nil si no hay fila.
func (r *StockRepo) Get(ctx context.Context, tenantID, productID, branchID string) (*entity.StockLevel, error) {
	var s entity.StockLevel
	err := scanStock(r.q.QueryRow(ctx,
		`SELECT `+stockColumns+` FROM stock_levels WHERE tenant_id = $1 AND product_id = $2 AND branch_id = $3`,
		tenantID, productID, branchID), &s)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE). Usar dentro de una tx.
// Si la fila no existe la crea en cero antes del SELECT, así una segunda tx concurrente espera
// al commit de la primera en vez de partir también de cero. La fila recién creada vuelve con
// UpdatedAt vacío para que el llamador complete el mínimo del producto.
func (r *StockRepo) GetForUpdate(ctx context.Context, tenantID, productID, branchID string) (*entity.StockLevel, error) {
	cmd, err := r.q.Exec(ctx, `
		INSERT INTO stock_levels (tenant_id, product_id, branch_id, current_stock, reserved_stock, min_stock_level, updated_at)
		VALUES ($1, $2, $3, 0, 0, 0, now())
		ON CONFLICT (tenant_id, product_id, branch_id) DO NOTHING`,
		tenantID, productID, branchID)
	if err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}

	var s entity.StockLevel
	err = scanStock(r.q.QueryRow(ctx,
		`SELECT `+stockColumns+` FROM stock_levels
		 WHERE tenant_id = $1 AND product_id = $2 AND branch_id = $3
		 FOR UPDATE`,
		tenantID, productID, branchID), &s)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	if cmd.RowsAffected() == 1 {
		s.UpdatedAt = time.Time{}
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila (producto, sucursal).
func (r *StockRepo) Upsert(ctx context.Context, s *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, product_id, branch_id)
		DO UPDATE SET current_stock = EXCLUDED.current_stock,
		              reserved_stock = EXCLUDED.reserved_stock,
		              min_stock_level = EXCLUDED.min_stock_level,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, s.TenantID, s.ProductID, s.BranchID, s.CurrentStock, s.ReservedStock,
		s.MinStockLevel, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// CreateIfMissing INSERT ... ON CONFLICT DO NOTHING; created=false si la fila ya existía.
func (r *StockRepo) CreateIfMissing(ctx context.Context, s *entity.StockLevel) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		INSERT INTO stock_levels (`+stockColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, product_id, branch_id) DO NOTHING`,
		s.TenantID, s.ProductID, s.BranchID, s.CurrentStock, s.ReservedStock, s.MinStockLevel, s.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("create stock: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List niveles de stock con nombre de producto/sucursal y costo. Excluye productos borrados.
func (r *StockRepo) List(ctx context.Context, tenantID string, f repository.StockFilter) ([]*entity.StockLevelView, error) {
	var (
		where = []string{"s.tenant_id = $1", "NOT p.is_deleted"}
		args  = []any{tenantID}
	)
	if f.BranchID != "" {
		args = append(args, f.BranchID)
		where = append(where, fmt.Sprintf("s.branch_id = $%d", len(args)))
	}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		where = append(where, fmt.Sprintf("s.product_id = $%d", len(args)))
	}
	if f.LowStockOnly {
		where = append(where, "GREATEST(s.current_stock - s.reserved_stock, 0) <= s.min_stock_level")
	}
	args = append(args, limitArg(f.Limit), f.Offset)
	query := fmt.Sprintf(`
		SELECT s.tenant_id, s.product_id, s.branch_id, s.current_stock, s.reserved_stock, s.min_stock_level,
		       s.updated_at, p.name, p.sku, p.category, COALESCE(b.name, ''), p.cost_price
		FROM stock_levels s
		JOIN products p ON p.id = s.product_id
		LEFT JOIN branches b ON b.id = s.branch_id
		WHERE %s
		ORDER BY s.branch_id, p.name
		LIMIT $%d OFFSET $%d`, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockLevelView
	for rows.Next() {
		var v entity.StockLevelView
		if err := rows.Scan(&v.TenantID, &v.ProductID, &v.BranchID, &v.CurrentStock, &v.ReservedStock,
			&v.MinStockLevel, &v.UpdatedAt, &v.ProductName, &v.SKU, &v.Category, &v.BranchName, &v.CostPrice); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// BranchStats agrega el stock por sucursal activa. Las sucursales sin filas salen en cero.
// El umbral de stock bajo es inclusivo, igual que inventory.ClassifyStock.
func (r *StockRepo) BranchStats(ctx context.Context, tenantID string) ([]entity.BranchStats, error) {
	const query = `
	SELECT
	    b.id,
	    b.name,
	    COUNT(p.id)                                                              AS total_products,
	    COALESCE(SUM(s.current_stock) FILTER (WHERE p.id IS NOT NULL), 0)       AS total_units,
	    COALESCE(SUM(s.current_stock * p.cost_price), 0)                         AS inventory_value,
	    COUNT(p.id) FILTER (
	        WHERE GREATEST(s.current_stock - s.reserved_stock, 0) <= s.min_stock_level) AS low_stock,
	    COUNT(p.id) FILTER (
	        WHERE GREATEST(s.current_stock - s.reserved_stock, 0) = 0)           AS out_of_stock
	FROM branches b
	LEFT JOIN stock_levels s ON s.branch_id = b.id AND s.tenant_id = b.tenant_id
	LEFT JOIN products     p ON p.id = s.product_id AND NOT p.is_deleted
	WHERE b.tenant_id = $1 AND b.is_active
	GROUP BY b.id, b.name
	ORDER BY b.id`

	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("stock.BranchStats: %w", err)
	}
	defer rows.Close()
	var out []entity.BranchStats
	for rows.Next() {
		var st entity.BranchStats
		if err := rows.Scan(&st.BranchID, &st.BranchName, &st.TotalProducts, &st.TotalUnits,
			&st.InventoryValue, &st.LowStockCount, &st.OutOfStockCount); err != nil {
			return nil, fmt.Errorf("stock.BranchStats scan: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
