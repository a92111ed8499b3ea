package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	pool *pgxpool.Pool
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepo {
	return &BranchRepo{pool: pool}
}

const branchColumns = `id, tenant_id, name, address, city, phone, email, opening_hours, manager_id, is_active,
	created_at, updated_at`

func scanBranch(row interface{ Scan(...any) error }) (*entity.Branch, error) {
	var b entity.Branch
	if err := row.Scan(&b.ID, &b.TenantID, &b.Name, &b.Address, &b.City, &b.Phone, &b.Email,
		&b.OpeningHours, &b.ManagerID, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO branches (`+branchColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID, b.TenantID, b.Name, b.Address, b.City, b.Phone, b.Email, b.OpeningHours, b.ManagerID,
		b.IsActive, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal del tenant. nil, nil si no existe.
func (r *BranchRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Branch, error) {
	b, err := scanBranch(r.pool.QueryRow(ctx,
		`SELECT `+branchColumns+` FROM branches WHERE tenant_id = $1 AND id = $2`, tenantID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

// Update actualiza los datos editables (incluido IsActive, usado por el borrado lógico).
func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE branches SET name = $3, address = $4, city = $5, phone = $6, email = $7, opening_hours = $8,
			manager_id = $9, is_active = $10, updated_at = $11
		WHERE tenant_id = $1 AND id = $2`,
		b.TenantID, b.ID, b.Name, b.Address, b.City, b.Phone, b.Email, b.OpeningHours, b.ManagerID,
		b.IsActive, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List sucursales del tenant por nombre.
func (r *BranchRepo) List(ctx context.Context, tenantID string, includeInactive bool) ([]*entity.Branch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+branchColumns+` FROM branches
		WHERE tenant_id = $1 AND (is_active OR $2)
		ORDER BY name`, tenantID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
