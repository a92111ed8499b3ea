package inventory

import "github.com/shopspring/decimal"

// Classification estado de stock derivado de disponible y mínimo.
type Classification struct {
	IsLowStock   bool
	IsOutOfStock bool
}

// ClassifyStock clasifica un nivel de stock. El límite es inclusivo: disponible == mínimo ya es stock bajo.
// Un disponible negativo (reservado mayor que actual) se trata como cero.
func ClassifyStock(available, minStockLevel decimal.Decimal) Classification {
	if available.IsNegative() {
		available = decimal.Zero
	}
	return Classification{
		IsLowStock:   available.LessThanOrEqual(minStockLevel),
		IsOutOfStock: available.IsZero(),
	}
}

// ApplySale descuenta sold de current sin bajar de cero.
// shortfall son las unidades vendidas que no había en stock (0 si alcanzó).
func ApplySale(current, sold decimal.Decimal) (newQty, shortfall decimal.Decimal) {
	newQty = current.Sub(sold)
	if newQty.IsNegative() {
		return decimal.Zero, newQty.Neg()
	}
	return newQty, decimal.Zero
}

// ApplyDelta aplica un delta con signo. ok=false si el resultado sería negativo.
func ApplyDelta(current, delta decimal.Decimal) (newQty decimal.Decimal, ok bool) {
	newQty = current.Add(delta)
	if newQty.IsNegative() {
		return current, false
	}
	return newQty, true
}
