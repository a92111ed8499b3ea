package dto

import "time"

// CreateStaffRequest entrada para crear personal.
// Si Modules viene vacío se aplican los permisos por defecto del rol.
type CreateStaffRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=200"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"omitempty,max=50"`
	Password  string   `json:"password" validate:"required,min=6"`
	Role      string   `json:"role" validate:"required,oneof=manager cashier"`
	Modules   []string `json:"modules" validate:"omitempty,dive,required"`
	BranchIDs []string `json:"branch_ids" validate:"omitempty,dive,required"`
}

// UpdateStaffRequest PATCH /api/staff/:id.
type UpdateStaffRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Phone     *string  `json:"phone" validate:"omitempty,max=50"`
	Password  *string  `json:"password" validate:"omitempty,min=6"`
	Role      *string  `json:"role" validate:"omitempty,oneof=manager cashier"`
	Modules   []string `json:"modules" validate:"omitempty,dive,required"`
	BranchIDs []string `json:"branch_ids" validate:"omitempty,dive,required"`
	IsActive  *bool    `json:"is_active"`
}

// StaffResponse salida de un miembro del personal (sin hash).
type StaffResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Modules     []string  `json:"modules"`
	BranchIDs   []string  `json:"branch_ids"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StaffActivityResponse entrada de auditoría.
type StaffActivityResponse struct {
	ID         string         `json:"id"`
	StaffID    string         `json:"staff_id,omitempty"`
	UserID     string         `json:"user_id"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resource_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
