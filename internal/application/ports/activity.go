package ports

import "context"

// Actor quién ejecuta una operación: el dueño (StaffID vacío) o un miembro del personal.
type Actor struct {
	TenantID string
	UserID   string
	StaffID  string
	Role     string
}

// ActivityRecorder registra acciones para auditoría. Es best-effort: nunca devuelve error al llamador.
type ActivityRecorder interface {
	Record(ctx context.Context, actor Actor, action, resource, resourceID string, details map[string]any)
}
