package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo bitácora de movimientos sobre PostgreSQL. Sólo inserta y lee.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create registra un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, tenant_id, product_id, branch_id, type, quantity, previous_stock, new_stock,
			reference_id, reason, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TenantID, m.ProductID, m.BranchID, m.Type, m.Quantity, m.PreviousStock, m.NewStock,
		m.ReferenceID, m.Reason, m.Notes, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List movimientos del más reciente al más antiguo, con el nombre del producto.
func (r *MovementRepo) List(ctx context.Context, tenantID string, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	var (
		where = []string{"m.tenant_id = $1"}
		args  = []any{tenantID}
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.BranchID != "" {
		add("m.branch_id = $%d", f.BranchID)
	}
	if f.ProductID != "" {
		add("m.product_id = $%d", f.ProductID)
	}
	if f.Type != "" {
		add("m.type = $%d", f.Type)
	}
	if f.From != nil {
		add("m.created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("m.created_at <= $%d", *f.To)
	}
	args = append(args, limitArg(f.Limit), f.Offset)
	query := fmt.Sprintf(`
		SELECT m.id, m.tenant_id, m.product_id, m.branch_id, m.type, m.quantity, m.previous_stock, m.new_stock,
		       m.reference_id, m.reason, m.notes, m.created_by, m.created_at, COALESCE(p.name, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		WHERE %s
		ORDER BY m.created_at DESC
		LIMIT $%d OFFSET $%d`, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.TenantID, &m.ProductID, &m.BranchID, &m.Type, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.ReferenceID, &m.Reason, &m.Notes, &m.CreatedBy,
			&m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
