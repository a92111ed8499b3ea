package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	BranchID    string          `json:"branch_id"`
	Category    string          `json:"category" validate:"required,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ExpenseFilterRequest query de GET /api/expenses.
type ExpenseFilterRequest struct {
	PageRequest
	BranchID string `query:"branch_id"`
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateDebtorRequest entrada para registrar un deudor.
type CreateDebtorRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Phone     string          `json:"phone" validate:"omitempty,max=50"`
	TotalOwed decimal.Decimal `json:"total_owed"`
	Notes     string          `json:"notes" validate:"omitempty,max=500"`
}

// DebtorPaymentRequest abono de un deudor.
type DebtorPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" validate:"omitempty,oneof=cash card transfer"`
	Notes  string          `json:"notes" validate:"omitempty,max=500"`
}

// DebtorPaymentResponse salida de un abono.
type DebtorPaymentResponse struct {
	ID        string          `json:"id"`
	DebtorID  string          `json:"debtor_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// DebtorResponse salida de un deudor con su saldo.
type DebtorResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Phone     string                  `json:"phone"`
	TotalOwed decimal.Decimal         `json:"total_owed"`
	TotalPaid decimal.Decimal         `json:"total_paid"`
	Balance   decimal.Decimal         `json:"balance"`
	Notes     string                  `json:"notes,omitempty"`
	Payments  []DebtorPaymentResponse `json:"payments,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// DailySummaryDTO resumen de un día.
type DailySummaryDTO struct {
	Date          string          `json:"date"`
	SalesCount    int             `json:"sales_count"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// DailySummaryRequest query de GET /api/reports/daily-summary.
type DailySummaryRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}
