package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var (
	_ repository.SupplierRepository      = (*SupplierRepo)(nil)
	_ repository.SupplierOrderRepository = (*SupplierOrderRepo)(nil)
)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

const supplierColumns = `id, tenant_id, name, contact_person, phone, email, address, categories, rating, is_active,
	created_at, updated_at`

func scanSupplier(row interface{ Scan(...any) error }) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.TenantID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Address,
		&s.Categories, &s.Rating, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO suppliers (`+supplierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.TenantID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, nonNil(s.Categories),
		s.Rating, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor del tenant. nil, nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.pool.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE tenant_id = $1 AND id = $2`, tenantID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update actualiza el proveedor.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE suppliers SET name = $3, contact_person = $4, phone = $5, email = $6, address = $7,
			categories = $8, rating = $9, is_active = $10, updated_at = $11
		WHERE tenant_id = $1 AND id = $2`,
		s.TenantID, s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, nonNil(s.Categories),
		s.Rating, s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List proveedores por nombre. limit <= 0 devuelve todos.
func (r *SupplierRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+supplierColumns+` FROM suppliers WHERE tenant_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`, tenantID, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SupplierOrderRepo compras recibidas (usable con pool o tx).
type SupplierOrderRepo struct {
	q Querier
}

// NewSupplierOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierOrderRepository(q Querier) *SupplierOrderRepo {
	return &SupplierOrderRepo{q: q}
}

// Create registra una compra recibida.
func (r *SupplierOrderRepo) Create(ctx context.Context, o *entity.SupplierOrder) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO supplier_orders (id, tenant_id, supplier_id, product_id, branch_id, quantity, unit_cost,
			expected_date, received_at, rating, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		o.ID, o.TenantID, o.SupplierID, o.ProductID, o.BranchID, o.Quantity, o.UnitCost,
		o.ExpectedDate, o.ReceivedAt, o.Rating, o.CreatedBy, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier order: %w", err)
	}
	return nil
}

// Performance agrega las órdenes por proveedor.
// Sin fecha esperada la orden cuenta como puntual (igual que SupplierOrder.OnTime).
func (r *SupplierOrderRepo) Performance(ctx context.Context, tenantID string) ([]entity.SupplierPerformance, error) {
	const query = `
	SELECT
	    supplier_id,
	    COUNT(*)                                                                  AS total_orders,
	    COUNT(*) FILTER (WHERE expected_date IS NULL OR received_at <= expected_date) AS on_time,
	    COALESCE(ROUND(AVG(rating), 2), 0)                                        AS avg_rating,
	    COALESCE(SUM(quantity * unit_cost), 0)                                    AS total_spent,
	    MAX(received_at)                                                          AS last_order_at
	FROM supplier_orders
	WHERE tenant_id = $1
	GROUP BY supplier_id
	ORDER BY supplier_id`

	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("supplierOrders.Performance: %w", err)
	}
	defer rows.Close()
	var out []entity.SupplierPerformance
	for rows.Next() {
		var p entity.SupplierPerformance
		if err := rows.Scan(&p.SupplierID, &p.TotalOrders, &p.OnTimeOrders, &p.AverageRating,
			&p.TotalSpent, &p.LastOrderAt); err != nil {
			return nil, fmt.Errorf("supplierOrders.Performance scan: %w", err)
		}
		p.OnTimeDeliveryRate = entity.OnTimeRate(p.OnTimeOrders, p.TotalOrders)
		out = append(out, p)
	}
	return out, rows.Err()
}
