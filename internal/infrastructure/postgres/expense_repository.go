package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo gastos operativos sobre PostgreSQL.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expenses (id, tenant_id, branch_id, category, description, amount, expense_date,
			is_deleted, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::TEXT::DATE, $8, $9, $10)`,
		e.ID, e.TenantID, e.BranchID, e.Category, e.Description, e.Amount, e.Date,
		e.IsDeleted, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List gastos no borrados, del más reciente al más antiguo.
func (r *ExpenseRepo) List(ctx context.Context, tenantID string, f repository.ExpenseFilter) ([]*entity.Expense, error) {
	var (
		where = []string{"tenant_id = $1", "NOT is_deleted"}
		args  = []any{tenantID}
	)
	if f.BranchID != "" {
		args = append(args, f.BranchID)
		where = append(where, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if f.From != "" {
		args = append(args, f.From)
		where = append(where, fmt.Sprintf("expense_date >= $%d::TEXT::DATE", len(args)))
	}
	if f.To != "" {
		args = append(args, f.To)
		where = append(where, fmt.Sprintf("expense_date <= $%d::TEXT::DATE", len(args)))
	}
	args = append(args, limitArg(f.Limit), f.Offset)
	query := fmt.Sprintf(`
		SELECT id, tenant_id, branch_id, category, description, amount, to_char(expense_date, 'YYYY-MM-DD'),
		       is_deleted, created_by, created_at
		FROM expenses WHERE %s
		ORDER BY expense_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d`, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var out []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.TenantID, &e.BranchID, &e.Category, &e.Description, &e.Amount, &e.Date,
			&e.IsDeleted, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// SoftDelete marca el gasto como borrado.
func (r *ExpenseRepo) SoftDelete(ctx context.Context, tenantID, id string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE expenses SET is_deleted = TRUE WHERE tenant_id = $1 AND id = $2 AND NOT is_deleted`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DailyTotals suma de gastos no borrados por fecha en [from, to].
func (r *ExpenseRepo) DailyTotals(ctx context.Context, tenantID, from, to string) (map[string]decimal.Decimal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(expense_date, 'YYYY-MM-DD'), COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE tenant_id = $1
		  AND expense_date BETWEEN $2::TEXT::DATE AND $3::TEXT::DATE
		  AND NOT is_deleted
		GROUP BY expense_date`, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("expenses.DailyTotals: %w", err)
	}
	defer rows.Close()
	out := map[string]decimal.Decimal{}
	for rows.Next() {
		var (
			day   string
			total decimal.Decimal
		)
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("expenses.DailyTotals scan: %w", err)
		}
		out[day] = total
	}
	return out, rows.Err()
}
