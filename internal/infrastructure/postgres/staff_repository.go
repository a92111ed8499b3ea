package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	pool *pgxpool.Pool
}

// NewStaffRepository construye el adaptador de personal.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{pool: pool}
}

const staffColumns = `id, tenant_id, name, email, phone, password_hash, role, permissions, branch_ids, is_active,
	created_at, updated_at`

func scanStaff(row interface{ Scan(...any) error }) (*entity.Staff, error) {
	var s entity.Staff
	if err := row.Scan(&s.ID, &s.TenantID, &s.Name, &s.Email, &s.Phone, &s.PasswordHash, &s.Role,
		&s.Permissions, &s.BranchIDs, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un miembro del personal. Email repetido (en cualquier tenant) devuelve ErrDuplicate.
func (r *StaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff (`+staffColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.TenantID, s.Name, s.Email, s.Phone, s.PasswordHash, s.Role,
		nonNil(s.Permissions), nonNil(s.BranchIDs), s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro del personal del tenant. nil, nil si no existe.
func (r *StaffRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Staff, error) {
	return r.get(ctx, `SELECT `+staffColumns+` FROM staff WHERE tenant_id = $1 AND id = $2`, tenantID, id)
}

// GetByEmail busca por email (único global, comparado en minúsculas).
func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	return r.get(ctx, `SELECT `+staffColumns+` FROM staff WHERE lower(email) = lower($1)`, email)
}

func (r *StaffRepo) get(ctx context.Context, query string, args ...any) (*entity.Staff, error) {
	s, err := scanStaff(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return s, nil
}

// Update actualiza rol, permisos, sucursales y estado.
func (r *StaffRepo) Update(ctx context.Context, s *entity.Staff) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE staff SET name = $3, phone = $4, password_hash = $5, role = $6, permissions = $7,
			branch_ids = $8, is_active = $9, updated_at = $10
		WHERE tenant_id = $1 AND id = $2`,
		s.TenantID, s.ID, s.Name, s.Phone, s.PasswordHash, s.Role,
		nonNil(s.Permissions), nonNil(s.BranchIDs), s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List personal del tenant por nombre; branchID filtra por sucursal asignada.
func (r *StaffRepo) List(ctx context.Context, tenantID, branchID string) ([]*entity.Staff, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+staffColumns+` FROM staff
		WHERE tenant_id = $1 AND ($2::TEXT = '' OR $2 = ANY(branch_ids))
		ORDER BY name`, tenantID, branchID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
