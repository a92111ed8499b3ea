package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: producto p9", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrInvalidReason, fiber.StatusBadRequest, "INVALID_REASON"},
		{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
		{domain.ErrInactiveStaff, fiber.StatusForbidden, "INACTIVE_STAFF"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{errInvalidBody, fiber.StatusBadRequest, "INVALID_BODY"},
		{errors.New("conexión rechazada"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code, _ := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestClassify_InternoNoExponeDetalle(t *testing.T) {
	_, _, msg := classify(errors.New("pq: password authentication failed"))
	assert.NotContains(t, msg, "password")
}

func TestValidateStruct(t *testing.T) {
	err := validateStruct(&dto.TransferRequest{ProductID: "p1", FromBranchID: "b1", ToBranchID: "b1"})
	var reqErr *requestError
	if assert.ErrorAs(t, err, &reqErr) {
		assert.Equal(t, "VALIDATION", reqErr.code)
		assert.Contains(t, reqErr.msg, "ToBranchID")
	}

	assert.NoError(t, validateStruct(&dto.LoginRequest{Email: "ana@tienda.test", Password: "x"}))
}
