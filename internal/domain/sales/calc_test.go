package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

func TestCalculate_DosItemsImpuestoYDescuentoFijo(t *testing.T) {
	items := []entity.SaleItem{
		{ProductID: "a", Quantity: dec("2"), UnitPrice: dec("100"), CostPrice: dec("60")},
		{ProductID: "b", Quantity: dec("1"), UnitPrice: dec("50"), CostPrice: dec("20")},
	}
	got := Calculate(items, dec("10"), entity.DiscountFixed, dec("5"))

	assertDec(t, "250", got.Subtotal)
	assertDec(t, "25", got.Tax)
	assertDec(t, "5", got.Discount)
	assertDec(t, "270", got.Total)
	assertDec(t, "110", got.TotalProfit)
	assertDec(t, "200", got.Items[0].LineTotal)
	assert.True(t, items[0].LineTotal.IsZero(), "Calculate no muta la entrada")
}

func TestDiscount(t *testing.T) {
	assertDec(t, "25", Discount(dec("250"), dec("10"), entity.DiscountPercentage))
	assertDec(t, "25", Discount(dec("250"), dec("10"), "percentage"))
	assertDec(t, "7.13", Discount(dec("250"), dec("7.125"), entity.DiscountFixed))
	assertDec(t, "0", Discount(dec("250"), dec("10"), ""))
}

func TestProfit_CostoNegativoEquivaleACero(t *testing.T) {
	assert.True(t, Profit(dec("3"), dec("10"), dec("-4")).Equal(Profit(dec("3"), dec("10"), dec("0"))))
	assertDec(t, "30", Profit(dec("3"), dec("10"), dec("-4")))
	assertDec(t, "-6", Profit(dec("3"), dec("10"), dec("12")))
}

func TestLineTotal_RedondeaEnCadaPaso(t *testing.T) {
	assertDec(t, "0.34", LineTotal(dec("1"), dec("0.335")))
	items := []entity.SaleItem{
		{Quantity: dec("1"), UnitPrice: dec("0.335")},
		{Quantity: dec("1"), UnitPrice: dec("0.335")},
	}
	// 0.34 + 0.34 y no round2(0.67)
	assertDec(t, "0.68", Subtotal(items))
}

func TestSubtotal_IndependienteDelOrden(t *testing.T) {
	items := []entity.SaleItem{
		{Quantity: dec("1.5"), UnitPrice: dec("3.33")},
		{Quantity: dec("2"), UnitPrice: dec("9.99")},
		{Quantity: dec("7"), UnitPrice: dec("0.15")},
	}
	rev := []entity.SaleItem{items[2], items[1], items[0]}
	assert.True(t, Subtotal(items).Equal(Subtotal(rev)))
}

func TestRecompute_EsIdempotente(t *testing.T) {
	s := entity.Sale{
		Items: []entity.SaleItem{
			{Quantity: dec("3"), UnitPrice: dec("19.99"), CostPrice: dec("12.5")},
			{Quantity: dec("0.75"), UnitPrice: dec("8.4"), CostPrice: dec("3")},
		},
		TaxRate:       dec("16"),
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: dec("12.5"),
	}
	once := Recompute(s)
	twice := Recompute(once)
	assert.True(t, once.Total.Equal(twice.Total))
	assert.True(t, once.Subtotal.Equal(twice.Subtotal))
	assert.True(t, once.Total.Equal(Total(once.Subtotal, once.Tax, once.Discount)))
}

func TestMigrateLegacy(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	deletedAt := ts.Add(time.Hour)
	ls := entity.LegacySale{
		ID:            "3f2a9c1e-aaaa-bbbb-cccc-000000000001",
		TenantID:      "t1",
		ProductID:     "p1",
		ProductName:   "Arroz",
		Quantity:      dec("4"),
		SellingPrice:  dec("2.5"),
		CostPrice:     dec("1.75"),
		PaymentMethod: entity.PaymentCash,
		CustomerName:  "Ana",
		CustomerPhone: "555",
		Timestamp:     ts,
		IsDeleted:     true,
		DeletedAt:     &deletedAt,
	}

	s := MigrateLegacy(ls)
	require.Len(t, s.Items, 1)
	assert.Equal(t, ls.ID, s.ID)
	assert.Equal(t, "SALE-20240309-3F2A9C1E", s.SaleNumber)
	assert.Equal(t, "2024-03-09", s.Date)
	assert.Equal(t, ts, s.Timestamp)
	assert.Equal(t, "Ana", s.CustomerName)
	assert.Equal(t, "555", s.CustomerPhone)
	assert.Equal(t, entity.PaymentCash, s.PaymentMethod)
	assert.True(t, s.IsDeleted)
	assertDec(t, "10", s.Total)
	assertDec(t, "3", s.TotalProfit)

	assert.Equal(t, s, MigrateLegacy(ls))
}
