package entity

import "time"

// User cuenta dueña de un negocio. Su ID es el TenantID de todos sus datos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	BusinessName string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
