// Package permission resuelve qué puede hacer un miembro del personal.
// Los permisos son cadenas "modulo:accion"; "all:*" concede todo.
package permission

import (
	"slices"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// AllPermissions comodín que concede cualquier permiso.
const AllPermissions = "all:*"

// Permisos estructurados usados por la API.
const (
	DashboardRead = "dashboard:read"

	SalesCreate = "sales:create"
	SalesRead   = "sales:read"
	SalesDelete = "sales:delete"

	InventoryRead   = "inventory:read"
	InventoryAdjust = "inventory:adjust"

	ProductsRead   = "products:read"
	ProductsCreate = "products:create"
	ProductsUpdate = "products:update"
	ProductsDelete = "products:delete"

	CustomersRead   = "customers:read"
	CustomersCreate = "customers:create"
	CustomersUpdate = "customers:update"

	TransfersRead   = "transfers:read"
	TransfersCreate = "transfers:create"

	StaffRead   = "staff:read"
	StaffCreate = "staff:create"
	StaffUpdate = "staff:update"
	StaffDelete = "staff:delete"

	BranchesRead   = "branches:read"
	BranchesCreate = "branches:create"
	BranchesUpdate = "branches:update"
	BranchesDelete = "branches:delete"

	SuppliersRead   = "suppliers:read"
	SuppliersCreate = "suppliers:create"
	SuppliersUpdate = "suppliers:update"

	ReportsRead = "reports:read"

	ExpensesRead   = "expenses:read"
	ExpensesCreate = "expenses:create"
	ExpensesDelete = "expenses:delete"

	SettingsRead   = "settings:read"
	SettingsUpdate = "settings:update"
)

var defaults = map[string][]string{
	entity.RoleOwner: {AllPermissions},
	entity.RoleManager: {
		DashboardRead,
		SalesCreate, SalesRead, SalesDelete,
		InventoryRead, InventoryAdjust,
		ProductsRead, ProductsCreate, ProductsUpdate, ProductsDelete,
		CustomersRead, CustomersCreate, CustomersUpdate,
		TransfersRead, TransfersCreate,
		StaffRead, StaffCreate, StaffUpdate,
		BranchesRead,
		SuppliersRead, SuppliersCreate, SuppliersUpdate,
		ReportsRead,
		ExpensesRead, ExpensesCreate, ExpensesDelete,
		SettingsRead,
	},
	entity.RoleCashier: {
		SalesCreate, SalesRead,
		SettingsRead,
	},
}

// IsValidRole indica si el rol existe.
func IsValidRole(role string) bool {
	_, ok := defaults[role]
	return ok
}

// DefaultPermissions permisos por defecto de un rol. Devuelve una copia; nil si el rol no existe.
func DefaultPermissions(role string) []string {
	p, ok := defaults[role]
	if !ok {
		return nil
	}
	return slices.Clone(p)
}

// HasPermission false si staff es nil o está inactivo; true siempre para owner;
// en otro caso true si perm o "all:*" está en sus permisos.
func HasPermission(staff *entity.Staff, perm string) bool {
	if staff == nil || !staff.IsActive {
		return false
	}
	if staff.Role == entity.RoleOwner {
		return true
	}
	return slices.Contains(staff.Permissions, perm) || slices.Contains(staff.Permissions, AllPermissions)
}

// CanAccessBranch los owner acceden a todas las sucursales; el resto sólo a las asignadas.
func CanAccessBranch(staff *entity.Staff, branchID string) bool {
	if staff == nil || !staff.IsActive {
		return false
	}
	if staff.Role == entity.RoleOwner {
		return true
	}
	return slices.Contains(staff.BranchIDs, branchID)
}
