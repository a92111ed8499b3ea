package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/auth"
	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
)

// AuthHandler maneja registro, login y el perfil de la sesión.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	users *usecase.UserUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, users *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, users: users}
}

// Register godoc
// @Summary      Registrar negocio
// @Description  Crea la cuenta dueña (tenant) y su sucursal principal.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name, business_name"
// @Success      201   {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	user, err := h.uc.RegisterUser(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, user)
}

// Login godoc
// @Summary      Iniciar sesión (dueño)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      401   {object}  dto.APIResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, loginError(err))
	}
	return ok(c, out)
}

// StaffLogin godoc
// @Summary      Iniciar sesión (personal)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      401   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/auth/staff/login [post]
func (h *AuthHandler) StaffLogin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.StaffLogin(c.UserContext(), in)
	if err != nil {
		return fail(c, loginError(err))
	}
	return ok(c, out)
}

// Me godoc
// @Summary      Perfil de la sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.ProfileResponse}
// @Failure      401  {object}  dto.APIResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.users.Profile(c.UserContext(), actorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// loginError un email desconocido responde igual que una contraseña incorrecta.
func loginError(err error) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrUnauthorized
	}
	return err
}
