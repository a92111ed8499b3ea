package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Address      string `json:"address" validate:"omitempty,max=300"`
	City         string `json:"city" validate:"omitempty,max=100"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
	OpeningHours string `json:"opening_hours" validate:"omitempty,max=200"`
	ManagerID    string `json:"manager_id"`
}

// UpdateBranchRequest entrada para actualizar una sucursal (campos opcionales).
type UpdateBranchRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Email        *string `json:"email" validate:"omitempty,email"`
	OpeningHours *string `json:"opening_hours" validate:"omitempty,max=200"`
	ManagerID    *string `json:"manager_id"`
	IsActive     *bool   `json:"is_active"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	OpeningHours string    `json:"opening_hours"`
	ManagerID    string    `json:"manager_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BranchDashboardItem sucursal con sus agregados de solo lectura.
type BranchDashboardItem struct {
	BranchResponse
	TotalProducts   int             `json:"total_products"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	TodaySales      decimal.Decimal `json:"today_sales"`
}

// BranchDashboardDTO respuesta de GET /api/branches/dashboard.
type BranchDashboardDTO struct {
	TotalBranches  int                   `json:"total_branches"`
	ActiveBranches int                   `json:"active_branches"`
	InventoryValue decimal.Decimal       `json:"inventory_value"`
	TodaySales     decimal.Decimal       `json:"today_sales"`
	Branches       []BranchDashboardItem `json:"branches"`
}
