package repository

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// StaffRepository define el puerto de persistencia para el personal (DIP).
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Staff, error)
	// GetByEmail busca por email entre todos los tenants (el email de personal es único).
	GetByEmail(ctx context.Context, email string) (*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	// List filtra por sucursal asignada cuando branchID no es vacío.
	List(ctx context.Context, tenantID, branchID string) ([]*entity.Staff, error)
}

// StaffActivityRepository bitácora de auditoría del personal (MongoDB).
type StaffActivityRepository interface {
	Append(ctx context.Context, activity *entity.StaffActivity) error
	// List ordena del más reciente al más antiguo. staffID vacío = todo el tenant.
	List(ctx context.Context, tenantID, staffID string, limit int) ([]*entity.StaffActivity, error)
}
