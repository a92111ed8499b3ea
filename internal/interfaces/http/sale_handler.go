package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/sales"
)

// SaleHandler maneja las ventas multi-ítem (protegido).
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Calcula subtotal, descuento, impuesto y utilidad y descuenta el stock de cada ítem
// @Description  en una sola transacción. Los faltantes de stock vuelven como warnings.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "sucursal, ítems, impuesto, descuento y pago"
// @Success      201   {object}  dto.APIResponse{data=dto.SaleResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	out, err := h.uc.CreateSale(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        branch_id        query  string  false  "filtrar por sucursal"
// @Param        from             query  string  false  "desde (YYYY-MM-DD)"
// @Param        to               query  string  false  "hasta, inclusive (YYYY-MM-DD)"
// @Param        include_deleted  query  bool    false  "incluir ventas anuladas"
// @Param        limit            query  int     false  "máximo (1-100)"
// @Param        offset           query  int     false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse{data=[]dto.SaleResponse}
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var in dto.SaleFilterRequest
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	var scope []string
	if in.BranchID != "" {
		if !canAccessBranch(c, in.BranchID) {
			return forbidBranch(c)
		}
	} else {
		scope = branchScope(c)
	}
	out, err := h.uc.ListSales(c.UserContext(), GetTenantID(c), in, scope)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.APIResponse{data=dto.SaleResponse}
// @Failure      403  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.visibleSale(c)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// visibleSale carga la venta de :id y verifica que su sucursal sea accesible.
func (h *SaleHandler) visibleSale(c *fiber.Ctx) (*dto.SaleResponse, error) {
	out, err := h.uc.GetSale(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if !canAccessBranch(c, out.BranchID) {
		return nil, errBranchForbidden
	}
	return out, nil
}

// Delete godoc
// @Summary      Anular venta
// @Description  Borrado lógico; el stock no se repone.
// @Tags         sales
// @Security     Bearer
// @Param        id   path  string  true  "ID de la venta"
// @Success      204
// @Failure      403  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.visibleSale(c); err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteSale(c.UserContext(), actorFrom(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Comprobante PDF de la venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	if _, err := h.visibleSale(c); err != nil {
		return fail(c, err)
	}
	pdf, filename, err := h.uc.Receipt(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

// MigrateLegacy godoc
// @Summary      Migrar ventas de un solo producto
// @Description  Convierte las ventas legadas del negocio al modelo multi-ítem. Idempotente.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.MigrationResult}
// @Failure      403  {object}  dto.APIResponse
// @Router       /api/sales/migrate-legacy [post]
func (h *SaleHandler) MigrateLegacy(c *fiber.Ctx) error {
	out, err := h.uc.MigrateLegacySales(c.UserContext(), actorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
