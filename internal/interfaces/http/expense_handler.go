package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
)

// ExpenseHandler maneja gastos del negocio.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "categoría, monto y fecha"
// @Success      201   {object}  dto.APIResponse{data=dto.ExpenseResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "filtrar por sucursal"
// @Param        from       query  string  false  "desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "hasta, inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.ExpenseResponse}
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var in dto.ExpenseFilterRequest
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	out, err := h.uc.List(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id   path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
