package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/staff"
)

// StaffHandler maneja el personal del negocio y su bitácora.
type StaffHandler struct {
	uc *staff.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *staff.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Description  Sin módulos se aplican los permisos por defecto del rol.
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStaffRequest  true  "datos del empleado"
// @Success      201   {object}  dto.APIResponse{data=dto.StaffResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/staff [post]
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// List godoc
// @Summary      Listar personal
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "sólo el personal asignado a la sucursal"
// @Success      200  {object}  dto.APIResponse{data=[]dto.StaffResponse}
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	branchID := c.Query("branch_id")
	if !canAccessBranch(c, branchID) {
		return forbidBranch(c)
	}
	list, err := h.uc.List(c.UserContext(), GetTenantID(c), branchID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.APIResponse{data=dto.StaffResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/staff/{id} [get]
func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del empleado"
// @Param        body  body  dto.UpdateStaffRequest  true  "campos a modificar"
// @Success      200   {object}  dto.APIResponse{data=dto.StaffResponse}
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/staff/{id} [patch]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStaffRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete godoc
// @Summary      Dar de baja empleado
// @Tags         staff
// @Security     Bearer
// @Param        id   path  string  true  "ID del empleado"
// @Success      204
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/staff/{id} [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Activity godoc
// @Summary      Bitácora del empleado
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del empleado"
// @Param        limit  query  int     false  "máximo de entradas (por defecto 50)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.StaffActivityResponse}
// @Router       /api/staff/{id}/activity [get]
func (h *StaffHandler) Activity(c *fiber.Ctx) error {
	list, err := h.uc.Activity(c.UserContext(), GetTenantID(c), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}
