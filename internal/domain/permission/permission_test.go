package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

func TestHasPermission(t *testing.T) {
	assert.False(t, HasPermission(nil, SalesRead))

	inactive := &entity.Staff{Role: entity.RoleOwner, IsActive: false}
	assert.False(t, HasPermission(inactive, SalesRead), "inactivo nunca tiene permisos, ni siendo owner")

	owner := &entity.Staff{Role: entity.RoleOwner, IsActive: true}
	assert.True(t, HasPermission(owner, "cualquier:cosa"))

	cashier := &entity.Staff{Role: entity.RoleCashier, IsActive: true, Permissions: DefaultPermissions(entity.RoleCashier)}
	assert.True(t, HasPermission(cashier, SalesCreate))
	assert.False(t, HasPermission(cashier, InventoryAdjust))

	wild := &entity.Staff{Role: entity.RoleManager, IsActive: true, Permissions: []string{AllPermissions}}
	assert.True(t, HasPermission(wild, StaffDelete))
}

func TestCanAccessBranch(t *testing.T) {
	owner := &entity.Staff{Role: entity.RoleOwner, IsActive: true}
	assert.True(t, CanAccessBranch(owner, "b9"))

	mgr := &entity.Staff{Role: entity.RoleManager, IsActive: true, BranchIDs: []string{"b1", "b2"}}
	assert.True(t, CanAccessBranch(mgr, "b2"))
	assert.False(t, CanAccessBranch(mgr, "b3"))
	assert.False(t, CanAccessBranch(nil, "b1"))
}

func TestDefaultPermissions(t *testing.T) {
	assert.Equal(t, []string{AllPermissions}, DefaultPermissions(entity.RoleOwner))
	assert.Contains(t, DefaultPermissions(entity.RoleManager), TransfersCreate)
	assert.NotContains(t, DefaultPermissions(entity.RoleManager), StaffDelete)
	assert.Nil(t, DefaultPermissions("root"))

	p := DefaultPermissions(entity.RoleCashier)
	p[0] = "x"
	assert.Equal(t, SalesCreate, DefaultPermissions(entity.RoleCashier)[0], "devuelve copia")
	assert.True(t, IsValidRole(entity.RoleCashier))
	assert.False(t, IsValidRole("root"))
}
