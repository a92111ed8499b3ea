package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
)

// ReportHandler maneja los reportes de ventas.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DailySummary godoc
// @Summary      Resumen diario
// @Description  Ventas, utilidad, gastos y utilidad neta por día del rango (por defecto el mes en curso).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "hasta, inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.DailySummaryDTO}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/reports/daily-summary [get]
func (h *ReportHandler) DailySummary(c *fiber.Ctx) error {
	var in dto.DailySummaryRequest
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.DailySummary(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Products godoc
// @Summary      Ranking de productos por ingresos
// @Description  Participación de cada producto en los ingresos del período; marca el grupo que acumula el 80%.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "desde (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "hasta, inclusive (YYYY-MM-DD)"
// @Param        top_n       query  int     false  "máximo de productos en el ranking"
// @Success      200  {object}  dto.APIResponse{data=dto.ProductReportDTO}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/reports/products [get]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	var in dto.ProductReportRequest
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.ProductReport(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
