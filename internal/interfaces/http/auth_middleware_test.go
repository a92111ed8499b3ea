package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/application/apptest"
	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/permission"
	apphttp "github.com/chukwumela909/Web-App-sub001/internal/interfaces/http"
	pkgjwt "github.com/chukwumela909/Web-App-sub001/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testTenantID  = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "inventory-test"
	testExpMin    = 60
)

// buildGuardedApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - Guard.Require para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildGuardedApp(store *apptest.Store, perm string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	guard := apphttp.NewGuard(store.StaffRepo())
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		guard.Require(perm),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":        true,
				"role":      apphttp.GetRole(c),
				"tenant_id": apphttp.GetTenantID(c),
				"staff_id":  apphttp.GetStaffID(c),
			})
		},
	)
	return app
}

func ownerToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{
		UserID: testTenantID, TenantID: testTenantID, Role: entity.RoleOwner,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func staffToken(t *testing.T, st entity.Staff) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{
		UserID: st.ID, TenantID: st.TenantID, Role: st.Role, StaffID: st.ID,
	}, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func cashier(id string, active bool) entity.Staff {
	return entity.Staff{
		ID:          id,
		TenantID:    testTenantID,
		Name:        "Cajero " + id,
		Email:       id + "@tienda.test",
		Role:        entity.RoleCashier,
		Permissions: permission.DefaultPermissions(entity.RoleCashier),
		BranchIDs:   []string{"b1"},
		IsActive:    active,
	}
}

// doGet lanza una petición GET /protected y devuelve la respuesta.
func doGet(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error, "la respuesta de error debe incluir error{code,message}")
	return *body.Error
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader401(t *testing.T) {
	app := buildGuardedApp(apptest.NewStore(), permission.SalesRead)
	resp := doGet(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

func TestAuthMiddleware_FormatoInvalido401(t *testing.T) {
	app := buildGuardedApp(apptest.NewStore(), permission.SalesRead)
	for _, h := range []string{"Token abc", "Bearer ", "Bearer no-es-un-jwt"} {
		resp := doGet(t, app, h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", h)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_FirmaDeOtroSecret401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", pkgjwt.Identity{
		UserID: testTenantID, TenantID: testTenantID, Role: entity.RoleOwner,
	}, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildGuardedApp(apptest.NewStore(), permission.SalesRead)
	resp := doGet(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{
		UserID: testTenantID, TenantID: testTenantID, Role: entity.RoleOwner,
	}, testIssuer, -5)
	require.NoError(t, err)

	app := buildGuardedApp(apptest.NewStore(), permission.SalesRead)
	resp := doGet(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard.Require
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_OwnerPasaSiempre(t *testing.T) {
	app := buildGuardedApp(apptest.NewStore(), permission.AllPermissions)
	resp := doGet(t, app, ownerToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.RoleOwner, body["role"])
	assert.Equal(t, testTenantID, body["tenant_id"])
	assert.Equal(t, "", body["staff_id"])
}

func TestGuard_CajeroConPermiso200(t *testing.T) {
	store := apptest.NewStore()
	st := cashier("st1", true)
	store.PutStaff(st)

	app := buildGuardedApp(store, permission.SalesCreate)
	resp := doGet(t, app, staffToken(t, st))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuard_CajeroSinPermiso403(t *testing.T) {
	store := apptest.NewStore()
	st := cashier("st1", true)
	store.PutStaff(st)

	app := buildGuardedApp(store, permission.InventoryAdjust)
	resp := doGet(t, app, staffToken(t, st))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "FORBIDDEN", e.Code)
	assert.Contains(t, e.Message, permission.InventoryAdjust)
}

func TestGuard_EmpleadoInactivo403(t *testing.T) {
	store := apptest.NewStore()
	st := cashier("st1", false)
	store.PutStaff(st)

	app := buildGuardedApp(store, permission.SalesRead)
	resp := doGet(t, app, staffToken(t, st))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "INACTIVE_STAFF", decodeError(t, resp).Code)
}

func TestGuard_EmpleadoInexistente403(t *testing.T) {
	app := buildGuardedApp(apptest.NewStore(), permission.SalesRead)
	resp := doGet(t, app, staffToken(t, cashier("fantasma", true)))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "INACTIVE_STAFF", decodeError(t, resp).Code)
}

// Los permisos se leen en cada petición: quitar el permiso bloquea sin re-login.
func TestGuard_CambioDePermisosSinReLogin(t *testing.T) {
	store := apptest.NewStore()
	st := cashier("st1", true)
	store.PutStaff(st)
	app := buildGuardedApp(store, permission.SalesCreate)
	tok := staffToken(t, st)

	resp := doGet(t, app, tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	st.Permissions = []string{permission.SalesRead}
	store.PutStaff(st)

	resp = doGet(t, app, tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGuard_EmpleadoConComodin(t *testing.T) {
	store := apptest.NewStore()
	st := cashier("st1", true)
	st.Role = entity.RoleManager
	st.Permissions = []string{permission.AllPermissions}
	store.PutStaff(st)

	app := buildGuardedApp(store, permission.AllPermissions)
	resp := doGet(t, app, staffToken(t, st))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
