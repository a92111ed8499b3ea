package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debtor cliente con saldo pendiente (ventas a crédito).
type Debtor struct {
	ID        string
	TenantID  string
	Name      string
	Phone     string
	TotalOwed decimal.Decimal
	TotalPaid decimal.Decimal
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance saldo pendiente = TotalOwed - TotalPaid.
func (d *Debtor) Balance() decimal.Decimal {
	return d.TotalOwed.Sub(d.TotalPaid)
}

// DebtorPayment abono de un deudor.
type DebtorPayment struct {
	ID        string
	TenantID  string
	DebtorID  string
	Amount    decimal.Decimal
	Method    string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
