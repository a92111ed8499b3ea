package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.DebtorRepository = (*DebtorRepo)(nil)

// DebtorRepo deudores y abonos sobre PostgreSQL.
type DebtorRepo struct {
	pool *pgxpool.Pool
}

// NewDebtorRepository construye el adaptador de deudores.
func NewDebtorRepository(pool *pgxpool.Pool) *DebtorRepo {
	return &DebtorRepo{pool: pool}
}

const debtorColumns = `id, tenant_id, name, phone, total_owed, total_paid, notes, created_at, updated_at`

func scanDebtor(row interface{ Scan(...any) error }) (*entity.Debtor, error) {
	var d entity.Debtor
	if err := row.Scan(&d.ID, &d.TenantID, &d.Name, &d.Phone, &d.TotalOwed, &d.TotalPaid, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste un deudor.
func (r *DebtorRepo) Create(ctx context.Context, d *entity.Debtor) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO debtors (`+debtorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.TenantID, d.Name, d.Phone, d.TotalOwed, d.TotalPaid, d.Notes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debtor: %w", err)
	}
	return nil
}

// GetByID obtiene un deudor. nil, nil si no existe.
func (r *DebtorRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Debtor, error) {
	d, err := scanDebtor(r.pool.QueryRow(ctx,
		`SELECT `+debtorColumns+` FROM debtors WHERE tenant_id = $1 AND id = $2`, tenantID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get debtor: %w", err)
	}
	return d, nil
}

// List deudores con mayor saldo primero.
func (r *DebtorRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Debtor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+debtorColumns+` FROM debtors WHERE tenant_id = $1
		ORDER BY (total_owed - total_paid) DESC, name
		LIMIT $2 OFFSET $3`, tenantID, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list debtors: %w", err)
	}
	defer rows.Close()
	var out []*entity.Debtor
	for rows.Next() {
		d, err := scanDebtor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan debtor: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// AddPayment inserta el abono y suma el monto a total_paid en una sola sentencia (CTE).
func (r *DebtorRepo) AddPayment(ctx context.Context, p *entity.DebtorPayment) error {
	cmd, err := r.pool.Exec(ctx, `
		WITH upd AS (
			UPDATE debtors SET total_paid = total_paid + $4, updated_at = $8
			WHERE tenant_id = $2 AND id = $3
			RETURNING id
		)
		INSERT INTO debtor_payments (id, tenant_id, debtor_id, amount, method, notes, created_by, created_at)
		SELECT $1, $2, upd.id, $4, $5, $6, $7, $8 FROM upd`,
		p.ID, p.TenantID, p.DebtorID, p.Amount, p.Method, p.Notes, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debtor payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListPayments abonos de un deudor, del más reciente al más antiguo.
func (r *DebtorRepo) ListPayments(ctx context.Context, tenantID, debtorID string) ([]*entity.DebtorPayment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, debtor_id, amount, method, notes, created_by, created_at
		FROM debtor_payments WHERE tenant_id = $1 AND debtor_id = $2
		ORDER BY created_at DESC`, tenantID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list debtor payments: %w", err)
	}
	defer rows.Close()
	var out []*entity.DebtorPayment
	for rows.Next() {
		var p entity.DebtorPayment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.DebtorID, &p.Amount, &p.Method, &p.Notes,
			&p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan debtor payment: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
