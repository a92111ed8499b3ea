package inventory

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// GetStock lista niveles de stock con nombre de producto/sucursal y su clasificación.
func (uc *StockUseCase) GetStock(ctx context.Context, tenantID string, filter repository.StockFilter) ([]dto.StockLevelResponse, error) {
	rows, err := uc.d.Stock.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelResponse, 0, len(rows))
	for _, r := range rows {
		resp := ToStockLevelResponse(r)
		if filter.LowStockOnly && !resp.IsLowStock {
			continue
		}
		out = append(out, resp)
	}
	return out, nil
}

// ListMovements consulta la bitácora de movimientos.
func (uc *StockUseCase) ListMovements(ctx context.Context, tenantID string, filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	if filter.Type != "" && !entity.IsValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.d.Movements.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// ListTransfers lista traslados donde la sucursal es origen o destino (vacío = todas).
func (uc *StockUseCase) ListTransfers(ctx context.Context, tenantID, branchID string, limit, offset int) ([]dto.TransferResponse, error) {
	list, err := uc.d.Transfers.List(ctx, tenantID, branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTransferResponse(t))
	}
	return out, nil
}

// BranchStockSummary totales de inventario por sucursal activa.
func (uc *StockUseCase) BranchStockSummary(ctx context.Context, tenantID string) ([]dto.BranchStockSummaryDTO, error) {
	stats, err := uc.d.Stock.BranchStats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchStockSummaryDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.BranchStockSummaryDTO{
			BranchID:        s.BranchID,
			BranchName:      s.BranchName,
			TotalProducts:   s.TotalProducts,
			TotalUnits:      s.TotalUnits,
			InventoryValue:  s.InventoryValue.Round(2),
			LowStockCount:   s.LowStockCount,
			OutOfStockCount: s.OutOfStockCount,
		})
	}
	return out, nil
}

// Reasons vocabulario de motivos de ajuste.
func (uc *StockUseCase) Reasons() []dto.ReasonDTO {
	rs := inventory.Reasons()
	out := make([]dto.ReasonDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.ReasonDTO{Code: string(r), Label: r.Label()})
	}
	return out
}

// ToStockLevelResponse mapea una fila de stock a DTO, calculando disponible y clasificación.
func ToStockLevelResponse(v *entity.StockLevelView) dto.StockLevelResponse {
	avail := v.AvailableStock()
	c := inventory.ClassifyStock(avail, v.MinStockLevel)
	return dto.StockLevelResponse{
		ProductID:      v.ProductID,
		ProductName:    v.ProductName,
		SKU:            v.SKU,
		Category:       v.Category,
		BranchID:       v.BranchID,
		BranchName:     v.BranchName,
		CurrentStock:   v.CurrentStock,
		ReservedStock:  v.ReservedStock,
		AvailableStock: avail,
		MinStockLevel:  v.MinStockLevel,
		IsLowStock:     c.IsLowStock,
		IsOutOfStock:   c.IsOutOfStock,
		UpdatedAt:      v.UpdatedAt,
	}
}

// ToMovementResponse mapea un movimiento a DTO.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		BranchID:      m.BranchID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		ReferenceID:   m.ReferenceID,
		Reason:        m.Reason,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// ToTransferResponse mapea un traslado a DTO.
func ToTransferResponse(t *entity.StockTransfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:             t.ID,
		TransferNumber: t.TransferNumber,
		ProductID:      t.ProductID,
		ProductName:    t.ProductName,
		FromBranchID:   t.FromBranchID,
		FromBranchName: t.FromBranchName,
		ToBranchID:     t.ToBranchID,
		ToBranchName:   t.ToBranchName,
		Quantity:       t.Quantity,
		Notes:          t.Notes,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
	}
}

// ToSupplierOrderResponse mapea una compra recibida a DTO.
func ToSupplierOrderResponse(o *entity.SupplierOrder) dto.SupplierOrderResponse {
	return dto.SupplierOrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		ProductID:    o.ProductID,
		BranchID:     o.BranchID,
		Quantity:     o.Quantity,
		UnitCost:     o.UnitCost,
		Total:        o.Quantity.Mul(o.UnitCost),
		ExpectedDate: o.ExpectedDate,
		ReceivedAt:   o.ReceivedAt,
		OnTime:       o.OnTime(),
		Rating:       o.Rating,
		CreatedBy:    o.CreatedBy,
	}
}
