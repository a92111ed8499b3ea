package dto

import "time"

// RegisterRequest alta de cuenta dueña (crea el tenant).
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	BusinessName string `json:"business_name" validate:"omitempty,max=200"`
}

// UserResponse salida de un usuario dueño (sin password).
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest entrada para login de dueño o de personal.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT. User o Staff según quién inicie sesión.
type LoginResponse struct {
	Token string         `json:"token"`
	Role  string         `json:"role"`
	User  *UserResponse  `json:"user,omitempty"`
	Staff *StaffResponse `json:"staff,omitempty"`
}

// ProfileResponse GET /api/me: el negocio de la sesión y, si es personal, su ficha.
type ProfileResponse struct {
	Role  string         `json:"role"`
	User  *UserResponse  `json:"user"`
	Staff *StaffResponse `json:"staff,omitempty"`
}
