package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var (
	_ repository.SaleRepository       = (*SaleRepo)(nil)
	_ repository.LegacySaleRepository = (*LegacySaleRepo)(nil)
)

// SaleRepo ventas multi-ítem sobre PostgreSQL. Los ítems se guardan como JSONB en sales.items.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// sale_date es DATE; se lee y escribe como texto YYYY-MM-DD.
const saleColumns = `id, tenant_id, sale_number, branch_id, staff_id, items, subtotal, tax_rate, tax,
	discount_type, discount_value, discount, total, total_profit, payment_method, customer_name,
	customer_phone, notes, ts, to_char(sale_date, 'YYYY-MM-DD'), is_deleted, deleted_at, created_at, updated_at`

func scanSale(row interface{ Scan(...any) error }) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(&s.ID, &s.TenantID, &s.SaleNumber, &s.BranchID, &s.StaffID, &s.Items, &s.Subtotal,
		&s.TaxRate, &s.Tax, &s.DiscountType, &s.DiscountValue, &s.Discount, &s.Total, &s.TotalProfit,
		&s.PaymentMethod, &s.CustomerName, &s.CustomerPhone, &s.Notes, &s.Timestamp, &s.Date,
		&s.IsDeleted, &s.DeletedAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste la venta con sus ítems. Un id repetido devuelve ErrDuplicate.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items := s.Items
	if items == nil {
		items = []entity.SaleItem{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, tenant_id, sale_number, branch_id, staff_id, items, subtotal, tax_rate, tax,
			discount_type, discount_value, discount, total, total_profit, payment_method, customer_name,
			customer_phone, notes, ts, sale_date, is_deleted, deleted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20::TEXT::DATE, $21, $22, $23, $24)`,
		s.ID, s.TenantID, s.SaleNumber, s.BranchID, s.StaffID, items, s.Subtotal, s.TaxRate, s.Tax,
		s.DiscountType, s.DiscountValue, s.Discount, s.Total, s.TotalProfit, s.PaymentMethod, s.CustomerName,
		s.CustomerPhone, s.Notes, s.Timestamp, s.Date, s.IsDeleted, s.DeletedAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta (incluidas las borradas). nil, nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE tenant_id = $1 AND id = $2`, tenantID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Exists indica si ya hay una venta con ese id (migración idempotente).
func (r *SaleRepo) Exists(ctx context.Context, tenantID, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE tenant_id = $1 AND id = $2)`, tenantID, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("sale exists: %w", err)
	}
	return ok, nil
}

// List ventas de la más reciente a la más antigua.
func (r *SaleRepo) List(ctx context.Context, tenantID string, f repository.SaleFilter) ([]*entity.Sale, error) {
	var (
		where = []string{"tenant_id = $1"}
		args  = []any{tenantID}
	)
	if !f.IncludeDeleted {
		where = append(where, "NOT is_deleted")
	}
	if f.BranchID != "" {
		args = append(args, f.BranchID)
		where = append(where, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if f.BranchIDs != nil {
		args = append(args, nonNil(f.BranchIDs))
		where = append(where, fmt.Sprintf("branch_id = ANY($%d)", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf("ts >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf("ts <= $%d", len(args)))
	}
	args = append(args, limitArg(f.Limit), f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM sales WHERE %s ORDER BY ts DESC LIMIT $%d OFFSET $%d`,
		saleColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var out []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SoftDelete marca la venta como borrada. ErrNotFound si no existe o ya estaba borrada.
func (r *SaleRepo) SoftDelete(ctx context.Context, tenantID, id string, at time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE sales SET is_deleted = TRUE, deleted_at = $3, updated_at = $3
		WHERE tenant_id = $1 AND id = $2 AND NOT is_deleted`, tenantID, id, at)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DailyTotals agrupa las ventas no borradas por fecha en [from, to].
func (r *SaleRepo) DailyTotals(ctx context.Context, tenantID, from, to string) ([]repository.DailySalesResult, error) {
	const query = `
	SELECT
	    to_char(sale_date, 'YYYY-MM-DD') AS day,
	    COUNT(*)                         AS sales_count,
	    COALESCE(SUM(total), 0)          AS total_sales,
	    COALESCE(SUM(total_profit), 0)   AS total_profit
	FROM sales
	WHERE tenant_id = $1
	  AND sale_date BETWEEN $2::TEXT::DATE AND $3::TEXT::DATE
	  AND NOT is_deleted
	GROUP BY sale_date
	ORDER BY sale_date`

	rows, err := r.q.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales.DailyTotals: %w", err)
	}
	defer rows.Close()
	var out []repository.DailySalesResult
	for rows.Next() {
		var d repository.DailySalesResult
		if err := rows.Scan(&d.Date, &d.SalesCount, &d.TotalSales, &d.TotalProfit); err != nil {
			return nil, fmt.Errorf("sales.DailyTotals scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// TotalsByBranch total vendido por sucursal en una fecha.
func (r *SaleRepo) TotalsByBranch(ctx context.Context, tenantID, date string) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT branch_id, COALESCE(SUM(total), 0)
		FROM sales
		WHERE tenant_id = $1 AND sale_date = $2::TEXT::DATE AND NOT is_deleted
		GROUP BY branch_id`, tenantID, date)
	if err != nil {
		return nil, fmt.Errorf("sales.TotalsByBranch: %w", err)
	}
	defer rows.Close()
	out := map[string]decimal.Decimal{}
	for rows.Next() {
		var (
			branchID string
			total    decimal.Decimal
		)
		if err := rows.Scan(&branchID, &total); err != nil {
			return nil, fmt.Errorf("sales.TotalsByBranch scan: %w", err)
		}
		out[branchID] = total
	}
	return out, rows.Err()
}

// LegacySaleRepo lectura de la tabla legacy_sales (modelo de un solo producto).
type LegacySaleRepo struct {
	q Querier
}

// NewLegacySaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLegacySaleRepository(q Querier) *LegacySaleRepo {
	return &LegacySaleRepo{q: q}
}

// ListByTenant todas las ventas legadas del tenant, incluidas las borradas (la migración conserva el flag).
func (r *LegacySaleRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.LegacySale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, tenant_id, product_id, product_name, quantity, selling_price, cost_price, total_amount,
		       profit, payment_method, customer_name, customer_phone, branch_id, ts, is_deleted, deleted_at
		FROM legacy_sales
		WHERE tenant_id = $1
		ORDER BY ts`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list legacy sales: %w", err)
	}
	defer rows.Close()
	var out []*entity.LegacySale
	for rows.Next() {
		var l entity.LegacySale
		if err := rows.Scan(&l.ID, &l.TenantID, &l.ProductID, &l.ProductName, &l.Quantity, &l.SellingPrice,
			&l.CostPrice, &l.TotalAmount, &l.Profit, &l.PaymentMethod, &l.CustomerName, &l.CustomerPhone,
			&l.BranchID, &l.Timestamp, &l.IsDeleted, &l.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan legacy sale: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
