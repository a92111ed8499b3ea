package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	pkgjwt "github.com/chukwumela909/Web-App-sub001/pkg/jwt"
)

const (
	localUserID   = "user_id"
	localTenantID = "tenant_id"
	localRole     = "role"
	localStaffID  = "staff_id"
	localStaff    = "staff"
)

// AuthMiddleware valida el header Authorization: Bearer <token> y carga la identidad en Locals.
// Responde 401 si falta el token o no es válido.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return errorBody(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "falta el header Authorization")
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return errorBody(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "formato de Authorization inválido")
		}
		tokenString := strings.TrimSpace(auth[len(prefix):])
		if tokenString == "" {
			return errorBody(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "token vacío")
		}
		id, err := pkgjwt.Parse(secret, tokenString)
		if err != nil || id.TenantID == "" || id.UserID == "" {
			return errorBody(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "token inválido o expirado")
		}
		c.Locals(localUserID, id.UserID)
		c.Locals(localTenantID, id.TenantID)
		c.Locals(localRole, id.Role)
		c.Locals(localStaffID, id.StaffID)
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return v
	}
	return ""
}

// GetUserID devuelve el user_id del token (usar después de AuthMiddleware).
func GetUserID(c *fiber.Ctx) string { return localString(c, localUserID) }

// GetTenantID devuelve el tenant (id de la cuenta dueña) del token.
func GetTenantID(c *fiber.Ctx) string { return localString(c, localTenantID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, localRole) }

// GetStaffID devuelve el staff_id del token; vacío para el dueño.
func GetStaffID(c *fiber.Ctx) string { return localString(c, localStaffID) }

// actorFrom arma el actor de los casos de uso con la identidad de la petición.
func actorFrom(c *fiber.Ctx) ports.Actor {
	return ports.Actor{
		TenantID: GetTenantID(c),
		UserID:   GetUserID(c),
		StaffID:  GetStaffID(c),
		Role:     GetRole(c),
	}
}
