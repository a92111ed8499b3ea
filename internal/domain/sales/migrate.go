package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// DateLayout formato del campo Date de una venta.
const DateLayout = "2006-01-02"

// SaleNumber genera el número visible de venta: SALE-YYYYMMDD-<primeros 8 del id>.
func SaleNumber(ts time.Time, id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("SALE-%s-%s", ts.UTC().Format("20060102"), strings.ToUpper(short))
}

// SaleDate fecha YYYY-MM-DD (UTC) de un timestamp.
func SaleDate(ts time.Time) string {
	return ts.UTC().Format(DateLayout)
}

// MigrateLegacy envuelve una venta de un solo producto como venta multi-ítem.
// Conserva id, timestamp, método de pago, cliente, sucursal y borrado lógico.
// Es determinista: migrar dos veces el mismo registro produce la misma venta.
func MigrateLegacy(ls entity.LegacySale) entity.Sale {
	item := entity.SaleItem{
		ProductID:   ls.ProductID,
		ProductName: ls.ProductName,
		Quantity:    ls.Quantity,
		UnitPrice:   ls.SellingPrice,
		CostPrice:   ls.CostPrice,
	}
	s := entity.Sale{
		ID:            ls.ID,
		TenantID:      ls.TenantID,
		SaleNumber:    SaleNumber(ls.Timestamp, ls.ID),
		BranchID:      ls.BranchID,
		Items:         []entity.SaleItem{item},
		TaxRate:       decimal.Zero,
		DiscountValue: decimal.Zero,
		PaymentMethod: ls.PaymentMethod,
		CustomerName:  ls.CustomerName,
		CustomerPhone: ls.CustomerPhone,
		Timestamp:     ls.Timestamp,
		Date:          SaleDate(ls.Timestamp),
		IsDeleted:     ls.IsDeleted,
		DeletedAt:     ls.DeletedAt,
		CreatedAt:     ls.Timestamp,
		UpdatedAt:     ls.Timestamp,
	}
	return Recompute(s)
}
