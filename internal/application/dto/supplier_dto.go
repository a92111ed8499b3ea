package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string           `json:"contact_person" validate:"omitempty,max=200"`
	Phone         string           `json:"phone" validate:"omitempty,max=50"`
	Email         string           `json:"email" validate:"omitempty,email"`
	Address       string           `json:"address" validate:"omitempty,max=300"`
	Categories    []string         `json:"categories" validate:"omitempty,dive,min=1,max=60"`
	Rating        *decimal.Decimal `json:"rating"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string          `json:"contact_person" validate:"omitempty,max=200"`
	Phone         *string          `json:"phone" validate:"omitempty,max=50"`
	Email         *string          `json:"email" validate:"omitempty,email"`
	Address       *string          `json:"address" validate:"omitempty,max=300"`
	Categories    []string         `json:"categories" validate:"omitempty,dive,min=1,max=60"`
	Rating        *decimal.Decimal `json:"rating"`
	IsActive      *bool            `json:"is_active"`
}

// SupplierPerformanceDTO métricas de desempeño calculadas desde las compras.
type SupplierPerformanceDTO struct {
	TotalOrders        int             `json:"total_orders"`
	OnTimeOrders       int             `json:"on_time_orders"`
	OnTimeDeliveryRate decimal.Decimal `json:"on_time_delivery_rate"`
	AverageRating      decimal.Decimal `json:"average_rating"`
	TotalSpent         decimal.Decimal `json:"total_spent"`
	LastOrderAt        *time.Time      `json:"last_order_at,omitempty"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	ContactPerson string                  `json:"contact_person"`
	Phone         string                  `json:"phone"`
	Email         string                  `json:"email"`
	Address       string                  `json:"address"`
	Categories    []string                `json:"categories"`
	Rating        decimal.Decimal         `json:"rating"`
	IsActive      bool                    `json:"is_active"`
	Performance   *SupplierPerformanceDTO `json:"performance,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// SupplierDashboardDTO respuesta de GET /api/suppliers/dashboard.
type SupplierDashboardDTO struct {
	TotalSuppliers     int                `json:"total_suppliers"`
	ActiveSuppliers    int                `json:"active_suppliers"`
	TotalSpent         decimal.Decimal    `json:"total_spent"`
	OnTimeDeliveryRate decimal.Decimal    `json:"on_time_delivery_rate"`
	TopSuppliers       []SupplierResponse `json:"top_suppliers"`
}

// SupplierOrderResponse compra recibida de un proveedor.
type SupplierOrderResponse struct {
	ID           string           `json:"id"`
	SupplierID   string           `json:"supplier_id"`
	ProductID    string           `json:"product_id"`
	BranchID     string           `json:"branch_id"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitCost     decimal.Decimal  `json:"unit_cost"`
	Total        decimal.Decimal  `json:"total"`
	ExpectedDate *time.Time       `json:"expected_date,omitempty"`
	ReceivedAt   time.Time        `json:"received_at"`
	OnTime       bool             `json:"on_time"`
	Rating       *decimal.Decimal `json:"rating,omitempty"`
	CreatedBy    string           `json:"created_by"`
}
