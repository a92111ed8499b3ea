// Package sales contiene los casos de uso de ventas multi-ítem: registro con descuento de stock,
// consulta, anulación lógica, comprobante PDF y migración del modelo de un solo producto.
package sales

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
	domainsales "github.com/chukwumela909/Web-App-sub001/internal/domain/sales"
	"github.com/chukwumela909/Web-App-sub001/pkg/logger"
)

// StockRecorder descuenta stock dentro de la transacción de la venta (implementado por inventory.StockUseCase).
type StockRecorder interface {
	RecordSaleInTx(
		ctx context.Context,
		repos ports.TxRepos,
		actor ports.Actor,
		branchID, productID string,
		qty decimal.Decimal,
		referenceID string,
	) (*inventory.SaleStockResult, error)
	InvalidateDashboards(ctx context.Context, tenantID string)
}

// Deps dependencias de SaleUseCase. Receipts, Activity y Logger son opcionales.
type Deps struct {
	TxRunner ports.TxRunner
	Stock    StockRecorder
	Products repository.ProductRepository
	Branches repository.BranchRepository
	Sales    repository.SaleRepository
	Legacy   repository.LegacySaleRepository
	Users    repository.UserRepository
	Receipts ports.ReceiptGenerator
	Activity ports.ActivityRecorder
	Logger   *logger.Logger
}

// SaleUseCase registra y consulta ventas.
type SaleUseCase struct {
	d   Deps
	now func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(d Deps) *SaleUseCase {
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	return &SaleUseCase{d: d, now: time.Now}
}

var hundred = decimal.NewFromInt(100)

// CreateSale valida la venta, completa nombre/precio/costo desde el producto, calcula totales y en una
// sola transacción descuenta el stock de cada ítem y guarda la venta.
func (uc *SaleUseCase) CreateSale(ctx context.Context, actor ports.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	branch, err := uc.d.Branches.GetByID(ctx, actor.TenantID, in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if !branch.IsActive {
		return nil, fmt.Errorf("%w: la sucursal está inactiva", domain.ErrConflict)
	}

	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		p, err := uc.d.Products.GetByID(ctx, actor.TenantID, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.IsDeleted {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
		item := entity.SaleItem{
			ProductID:   p.ID,
			ProductName: strings.TrimSpace(it.ProductName),
			Quantity:    it.Quantity,
			UnitPrice:   p.SellingPrice,
			CostPrice:   p.CostPrice,
		}
		if item.ProductName == "" {
			item.ProductName = p.Name
		}
		if it.UnitPrice != nil {
			item.UnitPrice = *it.UnitPrice
		}
		if it.CostPrice != nil {
			item.CostPrice = *it.CostPrice
		}
		items = append(items, item)
	}

	discountType := strings.ToUpper(in.DiscountType)
	totals := domainsales.Calculate(items, in.TaxRate, discountType, in.DiscountValue)
	if totals.Total.IsNegative() {
		return nil, fmt.Errorf("%w: el descuento supera el total de la venta", domain.ErrInvalidInput)
	}

	now := uc.now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		TenantID:      actor.TenantID,
		BranchID:      in.BranchID,
		StaffID:       actor.StaffID,
		Items:         totals.Items,
		Subtotal:      totals.Subtotal,
		TaxRate:       in.TaxRate,
		Tax:           totals.Tax,
		DiscountType:  discountType,
		DiscountValue: in.DiscountValue,
		Discount:      totals.Discount,
		Total:         totals.Total,
		TotalProfit:   totals.TotalProfit,
		PaymentMethod: in.PaymentMethod,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Notes:         strings.TrimSpace(in.Notes),
		Timestamp:     now,
		Date:          domainsales.SaleDate(now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sale.SaleNumber = domainsales.SaleNumber(now, sale.ID)

	// Filas de stock en orden de producto para que ventas concurrentes bloqueen en el mismo orden.
	order := make([]int, len(sale.Items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sale.Items[order[a]].ProductID < sale.Items[order[b]].ProductID
	})

	var warnings []string
	err = uc.d.TxRunner.Run(ctx, func(repos ports.TxRepos) error {
		warnings = warnings[:0]
		for _, i := range order {
			it := sale.Items[i]
			res, err := uc.d.Stock.RecordSaleInTx(ctx, repos, actor, sale.BranchID, it.ProductID, it.Quantity, sale.ID)
			if err != nil {
				return err
			}
			if res.Shortfall.IsPositive() {
				warnings = append(warnings, fmt.Sprintf("%s: stock insuficiente, faltaron %s unidades", it.ProductName, res.Shortfall.String()))
			}
		}
		return repos.Sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	uc.d.Stock.InvalidateDashboards(ctx, actor.TenantID)
	uc.record(ctx, actor, "sale.create", sale.ID, map[string]any{
		"sale_number": sale.SaleNumber,
		"branch_id":   sale.BranchID,
		"total":       sale.Total.String(),
		"items":       len(sale.Items),
	})
	uc.d.Logger.Info().
		Str("tenant_id", actor.TenantID).
		Str("sale_id", sale.ID).
		Str("total", sale.Total.String()).
		Int("items", len(sale.Items)).
		Msg("venta registrada")

	resp := ToSaleResponse(sale)
	resp.Warnings = warnings
	return &resp, nil
}

func validateCreate(in dto.CreateSaleRequest) error {
	if in.BranchID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(hundred) || in.DiscountValue.IsNegative() {
		return domain.ErrInvalidInput
	}
	// Misma escala que las columnas tax_rate (3) y discount_value (2), para que la venta guardada
	// se pueda recalcular con los mismos parámetros.
	if !in.TaxRate.Equal(in.TaxRate.Truncate(3)) {
		return fmt.Errorf("%w: tax_rate admite hasta 3 decimales", domain.ErrInvalidInput)
	}
	if !in.DiscountValue.Equal(in.DiscountValue.Truncate(2)) {
		return fmt.Errorf("%w: discount_value admite hasta 2 decimales", domain.ErrInvalidInput)
	}
	switch strings.ToUpper(in.DiscountType) {
	case "":
		if !in.DiscountValue.IsZero() {
			return fmt.Errorf("%w: discount_type requerido si hay descuento", domain.ErrInvalidInput)
		}
	case entity.DiscountPercentage:
		if in.DiscountValue.GreaterThan(hundred) {
			return domain.ErrInvalidInput
		}
	case entity.DiscountFixed:
	default:
		return domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || !it.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
		if it.UnitPrice != nil && it.UnitPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// GetSale obtiene una venta del tenant.
func (uc *SaleUseCase) GetSale(ctx context.Context, tenantID, id string) (*dto.SaleResponse, error) {
	s, err := uc.d.Sales.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToSaleResponse(s)
	return &resp, nil
}

// ListSales lista ventas con filtros de sucursal y rango de fechas (YYYY-MM-DD, inclusivo).
// branchIDs limita el resultado a esas sucursales; nil no restringe.
func (uc *SaleUseCase) ListSales(ctx context.Context, tenantID string, in dto.SaleFilterRequest, branchIDs []string) ([]dto.SaleResponse, error) {
	in.DefaultPage()
	f := repository.SaleFilter{
		BranchID:       in.BranchID,
		BranchIDs:      branchIDs,
		IncludeDeleted: in.IncludeDeleted,
		Limit:          in.Limit,
		Offset:         in.Offset,
	}
	if in.From != "" {
		t, err := time.Parse(domainsales.DateLayout, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.From = &t
	}
	if in.To != "" {
		t, err := time.Parse(domainsales.DateLayout, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	list, err := uc.d.Sales.List(ctx, tenantID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// DeleteSale anula la venta con borrado lógico (IsDeleted + DeletedAt). No repone stock.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, actor ports.Actor, id string) error {
	if err := uc.d.Sales.SoftDelete(ctx, actor.TenantID, id, uc.now()); err != nil {
		return err
	}
	uc.d.Stock.InvalidateDashboards(ctx, actor.TenantID)
	uc.record(ctx, actor, "sale.delete", id, nil)
	return nil
}

// Receipt genera el comprobante PDF de la venta. Devuelve bytes y nombre de archivo.
func (uc *SaleUseCase) Receipt(ctx context.Context, tenantID, id string) ([]byte, string, error) {
	if uc.d.Receipts == nil {
		return nil, "", fmt.Errorf("%w: generador de comprobantes no configurado", domain.ErrConflict)
	}
	s, err := uc.d.Sales.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, "", err
	}
	if s == nil {
		return nil, "", domain.ErrNotFound
	}
	data := ports.ReceiptData{Sale: s}
	if b, err := uc.d.Branches.GetByID(ctx, tenantID, s.BranchID); err == nil {
		data.Branch = b
	}
	if uc.d.Users != nil {
		if u, err := uc.d.Users.GetByID(ctx, tenantID); err == nil && u != nil {
			data.BusinessName = u.BusinessName
		}
	}
	pdf, err := uc.d.Receipts.GenerateReceipt(data)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generar pdf: %w", err)
	}
	return pdf, s.SaleNumber + ".pdf", nil
}

// MigrateLegacySales convierte las ventas de un solo producto que aún no existan como venta multi-ítem.
// Idempotente: las ya migradas (mismo id) se cuentan como omitidas. No toca el stock.
func (uc *SaleUseCase) MigrateLegacySales(ctx context.Context, actor ports.Actor) (*dto.MigrationResult, error) {
	legacy, err := uc.d.Legacy.ListByTenant(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	res := &dto.MigrationResult{}
	for _, ls := range legacy {
		exists, err := uc.d.Sales.Exists(ctx, actor.TenantID, ls.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			res.Skipped++
			continue
		}
		s := domainsales.MigrateLegacy(*ls)
		if err := uc.d.Sales.Create(ctx, &s); err != nil {
			return nil, fmt.Errorf("migrar venta %s: %w", ls.ID, err)
		}
		res.Migrated++
	}
	if res.Migrated > 0 {
		uc.d.Stock.InvalidateDashboards(ctx, actor.TenantID)
	}
	uc.record(ctx, actor, "sale.migrate_legacy", "", map[string]any{
		"migrated": res.Migrated,
		"skipped":  res.Skipped,
	})
	uc.d.Logger.Info().Str("tenant_id", actor.TenantID).Int("migrated", res.Migrated).Int("skipped", res.Skipped).Msg("migración de ventas legadas")
	return res, nil
}

func (uc *SaleUseCase) record(ctx context.Context, actor ports.Actor, action, id string, details map[string]any) {
	if uc.d.Activity != nil {
		uc.d.Activity.Record(ctx, actor, action, "sale", id, details)
	}
}

// ToSaleResponse mapea la entidad a DTO.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			CostPrice:   it.CostPrice,
			LineTotal:   it.LineTotal,
			Profit:      it.Profit,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		BranchID:      s.BranchID,
		StaffID:       s.StaffID,
		Items:         items,
		Subtotal:      s.Subtotal,
		TaxRate:       s.TaxRate,
		Tax:           s.Tax,
		DiscountType:  s.DiscountType,
		DiscountValue: s.DiscountValue,
		Discount:      s.Discount,
		Total:         s.Total,
		TotalProfit:   s.TotalProfit,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Notes:         s.Notes,
		Timestamp:     s.Timestamp,
		Date:          s.Date,
		IsDeleted:     s.IsDeleted,
		DeletedAt:     s.DeletedAt,
	}
}
