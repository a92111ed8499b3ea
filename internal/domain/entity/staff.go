package entity

import "time"

// Roles de personal.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// Staff empleado de un tenant con rol, permisos explícitos y sucursales asignadas.
type Staff struct {
	ID           string
	TenantID     string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	Permissions  []string // "modulo:accion", "all:*" = todo
	BranchIDs    []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StaffActivity registro de auditoría de acciones del personal (colección staff_activity_logs).
type StaffActivity struct {
	ID         string
	TenantID   string
	StaffID    string // vacío cuando actúa el dueño
	UserID     string
	Action     string // sale.create, stock.adjust, staff.update...
	Resource   string
	ResourceID string
	Details    map[string]any
	CreatedAt  time.Time
}
