package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chukwumela909/Web-App-sub001/internal/application/apptest"
	"github.com/chukwumela909/Web-App-sub001/internal/application/auth"
	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	pkgjwt "github.com/chukwumela909/Web-App-sub001/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "retail-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *apptest.Store) {
	t.Helper()
	s := apptest.NewStore()
	return auth.NewAuthUseCase(s.UserRepo(), s.StaffRepo(), s.BranchRepo(), jwtCfg), s
}

func TestRegisterYLoginDueño(t *testing.T) {
	uc, s := newAuth(t)
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "Ana@Tienda.com", Password: "password1", Name: "Ana", BusinessName: "Tienda Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@tienda.com", user.Email)
	assert.Equal(t, "active", user.Status)

	require.Len(t, s.Branches, 1, "se crea la sucursal principal")
	for _, b := range s.Branches {
		assert.Equal(t, user.ID, b.TenantID)
		assert.Equal(t, auth.DefaultBranchName, b.Name)
		assert.True(t, b.IsActive)
	}

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@tienda.com", Password: "password2", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, resp.Role)
	id, err := pkgjwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.Identity{UserID: user.ID, TenantID: user.ID, Role: entity.RoleOwner}, id)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@tienda.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStaffLogin(t *testing.T) {
	uc, s := newAuth(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto1"), bcrypt.MinCost)
	require.NoError(t, err)
	s.PutStaff(entity.Staff{
		ID: "st1", TenantID: "tenant-1", Name: "Luis", Email: "luis@tienda.com", PasswordHash: string(hash),
		Role: entity.RoleCashier, Permissions: []string{"sales:create"}, IsActive: true,
	})

	resp, err := uc.StaffLogin(ctx, dto.LoginRequest{Email: "LUIS@tienda.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, resp.Role)
	require.NotNil(t, resp.Staff)
	assert.Equal(t, []string{"sales"}, resp.Staff.Modules)

	id, err := pkgjwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", id.TenantID)
	assert.Equal(t, "st1", id.StaffID)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "luis@tienda.com", Password: "password1", Name: "Luis"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "el email ya es de un empleado")

	st := s.Staff["st1"]
	st.IsActive = false
	s.PutStaff(st)
	_, err = uc.StaffLogin(ctx, dto.LoginRequest{Email: "luis@tienda.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInactiveStaff)

	_, err = uc.StaffLogin(ctx, dto.LoginRequest{Email: "luis@tienda.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
