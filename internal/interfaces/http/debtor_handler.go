package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
)

// DebtorHandler maneja clientes con saldo pendiente y sus abonos.
type DebtorHandler struct {
	uc *usecase.DebtorUseCase
}

// NewDebtorHandler construye el handler.
func NewDebtorHandler(uc *usecase.DebtorUseCase) *DebtorHandler {
	return &DebtorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar deudor
// @Tags         debtors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDebtorRequest  true  "nombre y monto adeudado"
// @Success      201   {object}  dto.APIResponse{data=dto.DebtorResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/debtors [post]
func (h *DebtorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDebtorRequest
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
// @Summary      Listar deudores
// @Tags         debtors
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo (1-100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse{data=[]dto.DebtorResponse}
// @Router       /api/debtors [get]
func (h *DebtorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetTenantID(c), page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// GetByID godoc
// @Summary      Obtener deudor con sus abonos
// @Tags         debtors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del deudor"
// @Success      200  {object}  dto.APIResponse{data=dto.DebtorResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/debtors/{id} [get]
func (h *DebtorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// AddPayment godoc
// @Summary      Registrar abono
// @Tags         debtors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del deudor"
// @Param        body  body  dto.DebtorPaymentRequest  true  "monto y método"
// @Success      201   {object}  dto.APIResponse{data=dto.DebtorResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/debtors/{id}/payments [post]
func (h *DebtorHandler) AddPayment(c *fiber.Ctx) error {
	var in dto.DebtorPaymentRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.AddPayment(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}
