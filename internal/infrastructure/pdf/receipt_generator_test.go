package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0,00",
		"5":       "5,00",
		"999.999": "1.000,00",
		"25000":   "25.000,00",
		"1234567": "1.234.567,00",
		"-1234.5": "-1.234,50",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateReceipt(t *testing.T) {
	d := decimal.RequireFromString
	sale := &entity.Sale{
		SaleNumber:    "SALE-20260301-ABCDEF12",
		Timestamp:     time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentCash,
		Items: []entity.SaleItem{
			{ProductName: "Camisa", Quantity: d("2"), UnitPrice: d("100"), LineTotal: d("200")},
			{ProductName: "Gorra", Quantity: d("1"), UnitPrice: d("50"), LineTotal: d("50")},
		},
		Subtotal: d("250"), TaxRate: d("10"), Tax: d("25"), Discount: d("5"), Total: d("270"),
	}

	out, err := NewReceiptGenerator().GenerateReceipt(ports.ReceiptData{
		BusinessName: "Tienda Ana",
		Branch:       &entity.Branch{Name: "Centro"},
		Sale:         sale,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateReceipt_SinVenta(t *testing.T) {
	_, err := NewReceiptGenerator().GenerateReceipt(ports.ReceiptData{})
	assert.Error(t, err)
}
