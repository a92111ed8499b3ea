package staff_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chukwumela909/Web-App-sub001/internal/application/apptest"
	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/application/staff"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/permission"
	"github.com/chukwumela909/Web-App-sub001/pkg/logger"
)

const tenant = "tenant-1"

var owner = ports.Actor{TenantID: tenant, UserID: tenant, Role: entity.RoleOwner}

func newUseCase(t *testing.T) (*staff.StaffUseCase, *apptest.Store) {
	t.Helper()
	s := apptest.NewStore()
	s.PutBranch(entity.Branch{ID: "b1", TenantID: tenant, Name: "Centro", IsActive: true})
	s.PutBranch(entity.Branch{ID: "b2", TenantID: tenant, Name: "Norte", IsActive: true})
	s.PutBranch(entity.Branch{ID: "bx", TenantID: "otro", Name: "Ajena", IsActive: true})
	rec := staff.NewActivityLogger(s.ActivityRepo(), logger.Nop())
	return staff.NewStaffUseCase(s.StaffRepo(), s.BranchRepo(), s.ActivityRepo(), rec), s
}

func cashierReq() dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		Name:      "Luis",
		Email:     " Luis@Tienda.com ",
		Password:  "secreto1",
		Role:      entity.RoleCashier,
		BranchIDs: []string{"b1", "b1"},
	}
}

func TestCreate_PermisosPorDefectoDelRol(t *testing.T) {
	uc, s := newUseCase(t)
	resp, err := uc.Create(context.Background(), owner, cashierReq())
	require.NoError(t, err)

	assert.Equal(t, "luis@tienda.com", resp.Email)
	assert.Equal(t, permission.DefaultPermissions(entity.RoleCashier), resp.Permissions)
	assert.Equal(t, []string{"b1"}, resp.BranchIDs)
	assert.True(t, resp.IsActive)

	stored := s.Staff[resp.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))
	require.Len(t, s.Activities, 1)
	assert.Equal(t, "staff.create", s.Activities[0].Action)
}

func TestCreate_ConModulos(t *testing.T) {
	uc, _ := newUseCase(t)
	req := cashierReq()
	req.Modules = []string{"inventory"}
	resp, err := uc.Create(context.Background(), owner, req)
	require.NoError(t, err)
	assert.Equal(t, []string{permission.InventoryAdjust, permission.InventoryRead}, resp.Permissions)
	assert.Equal(t, []string{"inventory"}, resp.Modules)
}

func TestCreate_Errores(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, owner, cashierReq())
	require.NoError(t, err)

	_, err = uc.Create(ctx, owner, cashierReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	req := cashierReq()
	req.Email = "otro@tienda.com"
	req.Role = entity.RoleOwner
	_, err = uc.Create(ctx, owner, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req.Role = entity.RoleManager
	req.BranchIDs = []string{"bx"}
	_, err = uc.Create(ctx, owner, req)
	assert.ErrorIs(t, err, domain.ErrNotFound, "sucursal de otro tenant")

	req.BranchIDs = nil
	req.Modules = []string{"nomina"}
	_, err = uc.Create(ctx, owner, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_CambioDeRolReiniciaPermisos(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, owner, cashierReq())
	require.NoError(t, err)

	role := entity.RoleManager
	resp, err := uc.Update(ctx, owner, created.ID, dto.UpdateStaffRequest{Role: &role, BranchIDs: []string{"b1", "b2"}})
	require.NoError(t, err)
	assert.Equal(t, permission.DefaultPermissions(entity.RoleManager), resp.Permissions)
	assert.Equal(t, []string{"b1", "b2"}, resp.BranchIDs)

	resp, err = uc.Update(ctx, owner, created.ID, dto.UpdateStaffRequest{Modules: []string{"sales"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"sales"}, resp.Modules)

	empty := " "
	_, err = uc.Update(ctx, owner, created.ID, dto.UpdateStaffRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, owner, "no-existe", dto.UpdateStaffRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_EsLogico(t *testing.T) {
	uc, s := newUseCase(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, owner, cashierReq())
	require.NoError(t, err)

	self := ports.Actor{TenantID: tenant, UserID: tenant, StaffID: created.ID, Role: entity.RoleCashier}
	assert.ErrorIs(t, uc.Delete(ctx, self, created.ID), domain.ErrForbidden)

	require.NoError(t, uc.Delete(ctx, owner, created.ID))
	assert.False(t, s.Staff[created.ID].IsActive)

	got, err := uc.Get(ctx, tenant, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = uc.Get(ctx, "otro", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListYActividad(t *testing.T) {
	uc, s := newUseCase(t)
	ctx := context.Background()
	a, err := uc.Create(ctx, owner, cashierReq())
	require.NoError(t, err)
	req := cashierReq()
	req.Email = "ana@tienda.com"
	req.Name = "Ana"
	req.BranchIDs = []string{"b2"}
	_, err = uc.Create(ctx, owner, req)
	require.NoError(t, err)

	all, err := uc.List(ctx, tenant, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].Name)

	onlyB1, err := uc.List(ctx, tenant, "b1")
	require.NoError(t, err)
	require.Len(t, onlyB1, 1)
	assert.Equal(t, a.ID, onlyB1[0].ID)

	actor := ports.Actor{TenantID: tenant, UserID: tenant, StaffID: a.ID, Role: entity.RoleCashier}
	rec := staff.NewActivityLogger(s.ActivityRepo(), nil)
	rec.Record(ctx, actor, "sale.create", "sale", "s1", nil)
	rec.Record(ctx, actor, "sale.delete", "sale", "s1", nil)

	entries, err := uc.Activity(ctx, tenant, a.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2, "las altas las hizo el dueño y no cuentan")
	assert.Equal(t, "sale.delete", entries[0].Action)

	_, err = uc.Activity(ctx, tenant, "no-existe", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityLogger_GuardaYLoguea(t *testing.T) {
	s := apptest.NewStore()
	var buf bytes.Buffer
	rec := staff.NewActivityLogger(s.ActivityRepo(), logger.NewWriter(&buf, "info"))
	actor := ports.Actor{TenantID: tenant, UserID: tenant, StaffID: "st1"}

	rec.Record(context.Background(), actor, "stock.adjust", "stock", "p1", map[string]any{"delta": "5"})

	require.Len(t, s.Activities, 1)
	got := s.Activities[0]
	assert.Equal(t, "st1", got.StaffID)
	assert.Equal(t, "stock.adjust", got.Action)
	assert.Equal(t, "5", got.Details["delta"])
	assert.False(t, got.CreatedAt.IsZero())
	assert.Contains(t, buf.String(), `"action":"stock.adjust"`)
}
