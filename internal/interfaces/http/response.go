package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
)

const localError = "handler_error"

var validate = validator.New(validator.WithRequiredStructEnabled())

// requestError error de la petición (cuerpo o query inválidos); siempre responde 400.
type requestError struct {
	code string
	msg  string
}

func (e *requestError) Error() string { return e.msg }

var errInvalidBody = &requestError{code: "INVALID_BODY", msg: "cuerpo inválido"}

// bindBody parsea el JSON del cuerpo y valida sus etiquetas validate.
func bindBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return errInvalidBody
	}
	return validateStruct(dst)
}

// bindQuery parsea los parámetros de query (etiquetas query) y los valida.
func bindQuery(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return &requestError{code: "INVALID_QUERY", msg: "parámetros de consulta inválidos"}
	}
	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &requestError{code: "VALIDATION", msg: err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return &requestError{code: "VALIDATION", msg: "campos inválidos: " + strings.Join(fields, ", ")}
}

// ok responde 200 con el sobre { success: true, data }.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.APIResponse{Success: true, Data: data})
}

// created responde 201 con el sobre { success: true, data }.
func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{Success: true, Data: data})
}

// errorBody responde con el sobre { success: false, error: { code, message } }.
func errorBody(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.APIResponse{
		Success: false,
		Error:   &dto.ErrorResponse{Code: code, Message: msg},
	})
}

// fail traduce un error de dominio a su código HTTP. Los errores no reconocidos
// quedan en Locals para el logger de peticiones y se responden como 500 sin detalle.
func fail(c *fiber.Ctx, err error) error {
	status, code, msg := classify(err)
	if status >= fiber.StatusInternalServerError {
		c.Locals(localError, err)
	}
	return errorBody(c, status, code, msg)
}

func classify(err error) (int, string, string) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		return fiber.StatusBadRequest, reqErr.code, reqErr.msg
	case errors.Is(err, errBranchForbidden):
		return fiber.StatusForbidden, "BRANCH_FORBIDDEN", err.Error()
	case errors.Is(err, domain.ErrInvalidReason):
		return fiber.StatusBadRequest, "INVALID_REASON", err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrInactiveStaff):
		return fiber.StatusForbidden, "INACTIVE_STAFF", err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", err.Error()
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS", err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE", err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK", err.Error()
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT", err.Error()
	default:
		return fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor"
	}
}

// ErrorHandler manejador de errores de fiber (rutas inexistentes, panics recuperados,
// cuerpos demasiado grandes) con el mismo sobre que el resto de la API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusRequestEntityTooLarge:
			code = "BODY_TOO_LARGE"
		}
		return errorBody(c, fe.Code, code, fe.Message)
	}
	return fail(c, err)
}
