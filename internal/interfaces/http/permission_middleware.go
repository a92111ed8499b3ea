package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/permission"
)

// staffLoader es el contrato mínimo que necesita el guard para cargar al empleado del token.
// Lo implementa cualquier repository.StaffRepository.
type staffLoader interface {
	GetByID(ctx context.Context, tenantID, id string) (*entity.Staff, error)
}

// Guard autoriza peticiones según los permisos vigentes del empleado.
// Los permisos se leen en cada petición, así que un cambio de rol o una baja aplican sin re-login.
type Guard struct {
	staff staffLoader
}

// NewGuard construye el guard de permisos.
func NewGuard(staff staffLoader) *Guard {
	return &Guard{staff: staff}
}

// isOwner el dueño del negocio no lleva staff_id en el token.
func isOwner(c *fiber.Ctx) bool {
	return GetStaffID(c) == "" && GetRole(c) == entity.RoleOwner
}

// Require devuelve un middleware que exige perm. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - dueño: pasa siempre.
//   - empleado inexistente o inactivo: 403 INACTIVE_STAFF.
//   - empleado sin el permiso: 403 FORBIDDEN.
//   - fallo al consultar el empleado: 503.
func (g *Guard) Require(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isOwner(c) {
			return c.Next()
		}
		staffID := GetStaffID(c)
		if staffID == "" {
			return errorBody(c, fiber.StatusForbidden, "FORBIDDEN", "token sin identidad de empleado")
		}
		st, err := g.staff.GetByID(c.UserContext(), GetTenantID(c), staffID)
		if err != nil {
			c.Locals(localError, err)
			return errorBody(c, fiber.StatusServiceUnavailable, "PERMISSION_CHECK_FAILED",
				"no se pudo verificar el permiso, intente más tarde")
		}
		if st == nil || !st.IsActive {
			return errorBody(c, fiber.StatusForbidden, "INACTIVE_STAFF", "el empleado no existe o está inactivo")
		}
		if !permission.HasPermission(st, perm) {
			return errorBody(c, fiber.StatusForbidden, "FORBIDDEN", "permiso requerido: "+perm)
		}
		c.Locals(localStaff, st)
		return c.Next()
	}
}

// currentStaff empleado cargado por Guard.Require; nil para el dueño.
func currentStaff(c *fiber.Ctx) *entity.Staff {
	st, _ := c.Locals(localStaff).(*entity.Staff)
	return st
}

// canAccessBranch el dueño accede a todas las sucursales; el empleado sólo a las asignadas.
// branchID vacío no restringe.
func canAccessBranch(c *fiber.Ctx, branchID string) bool {
	if branchID == "" || isOwner(c) {
		return true
	}
	return permission.CanAccessBranch(currentStaff(c), branchID)
}

// branchScope sucursales que la petición puede ver en listados sin filtro de sucursal.
// nil para el dueño (todas); un empleado sin sucursales asignadas recibe una lista vacía.
func branchScope(c *fiber.Ctx) []string {
	if isOwner(c) {
		return nil
	}
	st := currentStaff(c)
	if st == nil || !st.IsActive {
		return []string{}
	}
	return append([]string{}, st.BranchIDs...)
}

var errBranchForbidden = errors.New("sin acceso a la sucursal")

// forbidBranch respuesta común cuando el empleado no tiene asignada la sucursal.
func forbidBranch(c *fiber.Ctx) error {
	return fail(c, errBranchForbidden)
}
