package ports

import (
	"context"
	"fmt"
)

// Tipos de dashboard cacheados por tenant.
const (
	DashboardBranches  = "branches"
	DashboardInventory = "inventory"
	DashboardSuppliers = "suppliers"
)

// Cache almacén clave-valor con TTL para agregados de solo lectura.
// Los errores de caché nunca deben romper la operación que la usa.
type Cache interface {
	// Get decodifica el valor en dst. found=false si la clave no existe o expiró.
	Get(ctx context.Context, key string, dst any) (found bool, err error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// DashboardKey clave de caché de un dashboard: dashboard:<kind>:<tenant>.
func DashboardKey(kind, tenantID string) string {
	return fmt.Sprintf("dashboard:%s:%s", kind, tenantID)
}

// DashboardKeys todas las claves de dashboard de un tenant (para invalidar tras mutaciones de stock).
func DashboardKeys(tenantID string) []string {
	return []string{
		DashboardKey(DashboardBranches, tenantID),
		DashboardKey(DashboardInventory, tenantID),
		DashboardKey(DashboardSuppliers, tenantID),
	}
}
