package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/chukwumela909/Web-App-sub001/internal/application/analytics"
)

// DashboardHandler maneja los agregados de solo lectura de sucursales, inventario y proveedores.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Branches godoc
// @Summary      Dashboard de sucursales
// @Description  Totales por sucursal: productos, valor de inventario, alertas y ventas de hoy.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.BranchDashboardDTO}
// @Router       /api/branches/dashboard [get]
func (h *DashboardHandler) Branches(c *fiber.Ctx) error {
	out, err := h.uc.Branches(c.UserContext(), GetTenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Inventory godoc
// @Summary      Dashboard de inventario
// @Description  Unidades, valor, alertas de stock, ventas del mes, movimientos recientes y top de productos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.InventoryDashboardDTO}
// @Router       /api/inventory/dashboard [get]
func (h *DashboardHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.UserContext(), GetTenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Suppliers godoc
// @Summary      Dashboard de proveedores
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.SupplierDashboardDTO}
// @Router       /api/suppliers/dashboard [get]
func (h *DashboardHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.Suppliers(c.UserContext(), GetTenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
