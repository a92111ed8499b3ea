package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// InventoryHandler maneja stock por sucursal, movimientos, ajustes, traslados y reposición (protegido).
type InventoryHandler struct {
	uc            *inventory.StockUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// BranchSummary godoc
// @Summary      Totales de inventario por sucursal
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.BranchStockSummaryDTO}
// @Router       /api/inventory/branches [get]
func (h *InventoryHandler) BranchSummary(c *fiber.Ctx) error {
	out, err := h.uc.BranchStockSummary(c.UserContext(), GetTenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Stock godoc
// @Summary      Niveles de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branch_id   query  string  false  "filtrar por sucursal"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Param        low_stock   query  bool    false  "sólo en o bajo el mínimo"
// @Param        limit       query  int     false  "máximo (1-100)"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse{data=[]dto.StockLevelResponse}
// @Failure      403  {object}  dto.APIResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	var in dto.StockFilterRequest
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	in.DefaultPage()
	out, err := h.uc.GetStock(c.UserContext(), GetTenantID(c), repository.StockFilter{
		BranchID:     in.BranchID,
		ProductID:    in.ProductID,
		LowStockOnly: in.LowStockOnly,
		Limit:        in.Limit,
		Offset:       in.Offset,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Movements godoc
// @Summary      Bitácora de movimientos de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branch_id   query  string  false  "filtrar por sucursal"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Param        type        query  string  false  "SALE, PURCHASE, ADJUSTMENT, TRANSFER_IN o TRANSFER_OUT"
// @Param        from        query  string  false  "desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "hasta, inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.MovementResponse}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var in dto.MovementFilterRequest
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	in.DefaultPage()
	filter := repository.MovementFilter{
		BranchID:  in.BranchID,
		ProductID: in.ProductID,
		Type:      in.Type,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if in.From != "" {
		from, _ := time.Parse(time.DateOnly, in.From)
		filter.From = &from
	}
	if in.To != "" {
		to, _ := time.Parse(time.DateOnly, in.To)
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}
	out, err := h.uc.ListMovements(c.UserContext(), GetTenantID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Reasons godoc
// @Summary      Motivos de ajuste disponibles
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.ReasonDTO}
// @Router       /api/inventory/reasons [get]
func (h *InventoryHandler) Reasons(c *fiber.Ctx) error {
	return ok(c, h.uc.Reasons())
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  Aplica un delta con signo; el resultado no puede quedar negativo. El motivo es obligatorio.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "producto, sucursal, delta y motivo"
// @Success      201   {object}  dto.APIResponse{data=dto.MovementResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/inventory/stock/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	mov, err := h.uc.AdjustStock(c.UserContext(), actorFrom(c), inventory.AdjustStockInput{
		ProductID: in.ProductID,
		BranchID:  in.BranchID,
		Delta:     in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, inventory.ToMovementResponse(mov))
}

// Initialize godoc
// @Summary      Inicializar inventario de una sucursal
// @Description  Crea una fila de stock por producto activo que aún no la tenga. Idempotente.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InitializeInventoryRequest  true  "sucursal y stock inicial"
// @Success      200   {object}  dto.APIResponse{data=dto.InitializeInventoryResponse}
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/inventory/initialize [post]
func (h *InventoryHandler) Initialize(c *fiber.Ctx) error {
	var in dto.InitializeInventoryRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.BranchID) {
		return forbidBranch(c)
	}
	res, err := h.uc.InitializeInventory(c.UserContext(), actorFrom(c), in.BranchID, in.DefaultStock)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, dto.InitializeInventoryResponse{BranchID: in.BranchID, Created: res.Created, Skipped: res.Skipped})
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Productos en o bajo su mínimo con la cantidad sugerida de pedido, por prioridad.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "sucursal; vacío = todas"
// @Success      200  {object}  dto.APIResponse{data=[]dto.ReplenishmentSuggestionDTO}
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	branchID := c.Query("branch_id")
	if !canAccessBranch(c, branchID) {
		return forbidBranch(c)
	}
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), GetTenantID(c), branchID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Transfers godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "traslados con la sucursal como origen o destino"
// @Param        limit      query  int     false  "máximo (1-100)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse{data=[]dto.TransferResponse}
// @Router       /api/transfers [get]
func (h *InventoryHandler) Transfers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}
	page.DefaultPage()
	branchID := c.Query("branch_id")
	if !canAccessBranch(c, branchID) {
		return forbidBranch(c)
	}
	out, err := h.uc.ListTransfers(c.UserContext(), GetTenantID(c), branchID, page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Transfer godoc
// @Summary      Trasladar stock entre sucursales
// @Description  Resta en origen y suma en destino en una sola transacción.
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "producto, origen, destino y cantidad"
// @Success      201   {object}  dto.APIResponse{data=dto.TransferResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	if !canAccessBranch(c, in.FromBranchID) {
		return forbidBranch(c)
	}
	t, err := h.uc.TransferStock(c.UserContext(), actorFrom(c), inventory.TransferInput{
		ProductID:    in.ProductID,
		FromBranchID: in.FromBranchID,
		ToBranchID:   in.ToBranchID,
		Quantity:     in.Quantity,
		Notes:        in.Notes,
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, inventory.ToTransferResponse(t))
}
