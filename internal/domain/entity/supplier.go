package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor del tenant.
type Supplier struct {
	ID            string
	TenantID      string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Categories    []string
	Rating        decimal.Decimal // calificación manual 0-5
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SupplierOrder compra recibida de un proveedor; alimenta las métricas de desempeño.
type SupplierOrder struct {
	ID           string
	TenantID     string
	SupplierID   string
	ProductID    string
	BranchID     string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	ExpectedDate *time.Time
	ReceivedAt   time.Time
	Rating       *decimal.Decimal // 1-5, opcional
	CreatedBy    string
	CreatedAt    time.Time
}

// OnTime indica si la orden llegó a tiempo (sin fecha esperada cuenta como a tiempo).
func (o *SupplierOrder) OnTime() bool {
	if o.ExpectedDate == nil {
		return true
	}
	return !o.ReceivedAt.After(*o.ExpectedDate)
}

// SupplierPerformance métricas agregadas a partir de SupplierOrder.
type SupplierPerformance struct {
	SupplierID         string
	TotalOrders        int
	OnTimeOrders       int
	OnTimeDeliveryRate decimal.Decimal // porcentaje 0-100
	AverageRating      decimal.Decimal
	TotalSpent         decimal.Decimal
	LastOrderAt        *time.Time
}

// OnTimeRate porcentaje de órdenes a tiempo (0-100, 2 decimales). Cero si no hay órdenes.
func OnTimeRate(onTime, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(onTime)).Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).Round(2)
}
