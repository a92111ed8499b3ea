package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
)

// SupplierHandler maneja proveedores y la recepción de compras.
type SupplierHandler struct {
	uc    *usecase.SupplierUseCase
	stock *inventory.StockUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, stock *inventory.StockUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc, stock: stock}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "datos del proveedor"
// @Success      201   {object}  dto.APIResponse{data=dto.SupplierResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
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
// @Summary      Listar proveedores con su desempeño
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo (1-100, por defecto 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse{data=dto.ListResponse[dto.SupplierResponse]}
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.APIResponse{data=dto.SupplierResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "campos a modificar"
// @Success      200   {object}  dto.APIResponse{data=dto.SupplierResponse}
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Purchase godoc
// @Summary      Recibir compra de un proveedor
// @Description  Suma stock en la sucursal, recalcula el costo promedio ponderado y registra la orden.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del proveedor"
// @Param        body  body  dto.PurchaseRequest  true  "producto, sucursal, cantidad y costo unitario"
// @Success      201   {object}  dto.APIResponse{data=dto.SupplierOrderResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/suppliers/{id}/purchases [post]
func (h *SupplierHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	order, err := h.stock.ReceivePurchase(c.UserContext(), actorFrom(c), inventory.PurchaseInput{
		SupplierID:   c.Params("id"),
		ProductID:    in.ProductID,
		BranchID:     in.BranchID,
		Quantity:     in.Quantity,
		UnitCost:     in.UnitCost,
		ExpectedDate: in.ExpectedDate,
		Rating:       in.Rating,
		Notes:        in.Notes,
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, inventory.ToSupplierOrderResponse(order))
}
