// Package sales contiene la aritmética de ventas multi-ítem. Todas las funciones son puras.
// El redondeo es a 2 decimales (mitad lejos de cero) en cada valor derivado, no sólo al final:
// redondear y luego sumar puede diferir en centavos de sumar y luego redondear.
package sales

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Round2 redondea a 2 decimales.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// LineTotal = round2(cantidad × precio unitario).
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return Round2(quantity.Mul(unitPrice))
}

// Profit = round2((precio − max(0, costo)) × cantidad). Un costo negativo cuenta como cero.
func Profit(quantity, unitPrice, costPrice decimal.Decimal) decimal.Decimal {
	if costPrice.IsNegative() {
		costPrice = decimal.Zero
	}
	return Round2(unitPrice.Sub(costPrice).Mul(quantity))
}

// Subtotal = round2(Σ LineTotal(ítem)).
func Subtotal(items []entity.SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it.Quantity, it.UnitPrice))
	}
	return Round2(sum)
}

// Tax = round2(subtotal × tasa / 100).
func Tax(subtotal, taxRatePercent decimal.Decimal) decimal.Decimal {
	return Round2(subtotal.Mul(taxRatePercent).Div(hundred))
}

// Discount calcula el descuento. PERCENTAGE es porcentaje del subtotal, FIXED el monto tal cual.
// Un tipo vacío o desconocido no descuenta nada.
func Discount(subtotal, amount decimal.Decimal, kind string) decimal.Decimal {
	switch strings.ToUpper(kind) {
	case entity.DiscountPercentage:
		return Round2(subtotal.Mul(amount).Div(hundred))
	case entity.DiscountFixed:
		return Round2(amount)
	default:
		return decimal.Zero
	}
}

// Total = round2(subtotal + impuesto − descuento).
func Total(subtotal, tax, discount decimal.Decimal) decimal.Decimal {
	return Round2(subtotal.Add(tax).Sub(discount))
}

// Totals resultado de Calculate.
type Totals struct {
	Items       []entity.SaleItem
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	TotalProfit decimal.Decimal
}

// Calculate deriva line totals, utilidades y totales de la venta. No modifica items.
func Calculate(items []entity.SaleItem, taxRatePercent decimal.Decimal, discountKind string, discountValue decimal.Decimal) Totals {
	out := make([]entity.SaleItem, len(items))
	profit := decimal.Zero
	for i, it := range items {
		it.LineTotal = LineTotal(it.Quantity, it.UnitPrice)
		it.Profit = Profit(it.Quantity, it.UnitPrice, it.CostPrice)
		profit = profit.Add(it.Profit)
		out[i] = it
	}
	sub := Subtotal(out)
	tax := Tax(sub, taxRatePercent)
	disc := Discount(sub, discountValue, discountKind)
	return Totals{
		Items:       out,
		Subtotal:    sub,
		Tax:         tax,
		Discount:    disc,
		Total:       Total(sub, tax, disc),
		TotalProfit: Round2(profit),
	}
}

// Recompute vuelve a derivar todos los montos de una venta desde sus ítems, tasa y descuento.
// Para una venta ya calculada el resultado es idéntico a la entrada.
func Recompute(s entity.Sale) entity.Sale {
	t := Calculate(s.Items, s.TaxRate, s.DiscountType, s.DiscountValue)
	s.Items = t.Items
	s.Subtotal = t.Subtotal
	s.Tax = t.Tax
	s.Discount = t.Discount
	s.Total = t.Total
	s.TotalProfit = t.TotalProfit
	return s
}
