package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// ExpenseFilter filtros de gastos. Fechas YYYY-MM-DD inclusivas; vacías = sin límite.
type ExpenseFilter struct {
	BranchID string
	From     string
	To       string
	Limit    int
	Offset   int
}

// ExpenseRepository define el puerto de persistencia para gastos (DIP).
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context, tenantID string, filter ExpenseFilter) ([]*entity.Expense, error)
	SoftDelete(ctx context.Context, tenantID, id string) error
	// DailyTotals suma de gastos por fecha en [from, to].
	DailyTotals(ctx context.Context, tenantID, from, to string) (map[string]decimal.Decimal, error)
}

// DebtorRepository define el puerto de persistencia para deudores y sus abonos (DIP).
type DebtorRepository interface {
	Create(ctx context.Context, debtor *entity.Debtor) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Debtor, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Debtor, error)
	// AddPayment registra el abono y suma Amount a total_paid en una sola sentencia.
	AddPayment(ctx context.Context, payment *entity.DebtorPayment) error
	ListPayments(ctx context.Context, tenantID, debtorID string) ([]*entity.DebtorPayment, error)
}
