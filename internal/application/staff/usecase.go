// Package staff gestiona el personal de un tenant: alta con rol y módulos, edición, baja lógica
// y consulta de la bitácora de actividad.
package staff

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/permission"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

const defaultActivityLimit = 50

// StaffUseCase casos de uso de personal.
type StaffUseCase struct {
	staffRepo    repository.StaffRepository
	branchRepo   repository.BranchRepository
	activityRepo repository.StaffActivityRepository
	activity     ports.ActivityRecorder
	now          func() time.Time
}

// NewStaffUseCase activityRepo y activity pueden ser nil.
func NewStaffUseCase(
	staffRepo repository.StaffRepository,
	branchRepo repository.BranchRepository,
	activityRepo repository.StaffActivityRepository,
	activity ports.ActivityRecorder,
) *StaffUseCase {
	return &StaffUseCase{
		staffRepo:    staffRepo,
		branchRepo:   branchRepo,
		activityRepo: activityRepo,
		activity:     activity,
		now:          time.Now,
	}
}

// Create da de alta un miembro del personal. Sin módulos recibe los permisos por defecto del rol.
func (uc *StaffUseCase) Create(ctx context.Context, actor ports.Actor, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Name) == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == entity.RoleOwner || !permission.IsValidRole(in.Role) {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Role)
	}
	existing, err := uc.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	perms, err := resolvePermissions(in.Role, in.Modules)
	if err != nil {
		return nil, err
	}
	branches, err := uc.checkBranches(ctx, actor.TenantID, in.BranchIDs)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	st := &entity.Staff{
		ID:           uuid.New().String(),
		TenantID:     actor.TenantID,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  perms,
		BranchIDs:    branches,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.staffRepo.Create(ctx, st); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "staff.create", st.ID, map[string]any{"role": st.Role, "email": st.Email})
	return ToStaffResponse(st), nil
}

// Get devuelve un miembro del personal del tenant.
func (uc *StaffUseCase) Get(ctx context.Context, tenantID, id string) (*dto.StaffResponse, error) {
	st, err := uc.load(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToStaffResponse(st), nil
}

// List lista el personal, opcionalmente sólo el asignado a una sucursal.
func (uc *StaffUseCase) List(ctx context.Context, tenantID, branchID string) ([]*dto.StaffResponse, error) {
	list, err := uc.staffRepo.List(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StaffResponse, 0, len(list))
	for _, st := range list {
		out = append(out, ToStaffResponse(st))
	}
	return out, nil
}

// Update aplica un parche. Cambiar el rol sin módulos reinicia los permisos a los del nuevo rol.
func (uc *StaffUseCase) Update(ctx context.Context, actor ports.Actor, id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	st, err := uc.load(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	changed := []string{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		st.Name = name
		changed = append(changed, "name")
	}
	if in.Phone != nil {
		st.Phone = strings.TrimSpace(*in.Phone)
		changed = append(changed, "phone")
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		st.PasswordHash = string(hash)
		changed = append(changed, "password")
	}
	if in.Role != nil && *in.Role != st.Role {
		if *in.Role == entity.RoleOwner || !permission.IsValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, *in.Role)
		}
		st.Role = *in.Role
		st.Permissions = permission.DefaultPermissions(st.Role)
		changed = append(changed, "role")
	}
	if in.Modules != nil {
		perms, err := resolvePermissions(st.Role, in.Modules)
		if err != nil {
			return nil, err
		}
		st.Permissions = perms
		changed = append(changed, "permissions")
	}
	if in.BranchIDs != nil {
		branches, err := uc.checkBranches(ctx, actor.TenantID, in.BranchIDs)
		if err != nil {
			return nil, err
		}
		st.BranchIDs = branches
		changed = append(changed, "branch_ids")
	}
	if in.IsActive != nil {
		st.IsActive = *in.IsActive
		changed = append(changed, "is_active")
	}
	st.UpdatedAt = uc.now()
	if err := uc.staffRepo.Update(ctx, st); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "staff.update", st.ID, map[string]any{"fields": changed})
	return ToStaffResponse(st), nil
}

// Delete baja lógica (IsActive=false). Un empleado no puede darse de baja a sí mismo.
func (uc *StaffUseCase) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if actor.StaffID != "" && actor.StaffID == id {
		return fmt.Errorf("%w: no puede desactivar su propia cuenta", domain.ErrForbidden)
	}
	st, err := uc.load(ctx, actor.TenantID, id)
	if err != nil {
		return err
	}
	st.IsActive = false
	st.UpdatedAt = uc.now()
	if err := uc.staffRepo.Update(ctx, st); err != nil {
		return err
	}
	uc.record(ctx, actor, "staff.delete", st.ID, nil)
	return nil
}

// Activity últimas acciones de un miembro del personal, de la más reciente a la más antigua.
func (uc *StaffUseCase) Activity(ctx context.Context, tenantID, staffID string, limit int) ([]*dto.StaffActivityResponse, error) {
	if _, err := uc.load(ctx, tenantID, staffID); err != nil {
		return nil, err
	}
	if uc.activityRepo == nil {
		return []*dto.StaffActivityResponse{}, nil
	}
	if limit <= 0 || limit > 200 {
		limit = defaultActivityLimit
	}
	list, err := uc.activityRepo.List(ctx, tenantID, staffID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StaffActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.StaffActivityResponse{
			ID:         a.ID,
			StaffID:    a.StaffID,
			UserID:     a.UserID,
			Action:     a.Action,
			Resource:   a.Resource,
			ResourceID: a.ResourceID,
			Details:    a.Details,
			CreatedAt:  a.CreatedAt,
		})
	}
	return out, nil
}

func (uc *StaffUseCase) load(ctx context.Context, tenantID, id string) (*entity.Staff, error) {
	st, err := uc.staffRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	return st, nil
}

// checkBranches verifica que las sucursales existan en el tenant y elimina duplicados.
func (uc *StaffUseCase) checkBranches(ctx context.Context, tenantID string, ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if slices.Contains(out, id) {
			continue
		}
		b, err := uc.branchRepo.GetByID(ctx, tenantID, id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, fmt.Errorf("%w: sucursal %s", domain.ErrNotFound, id)
		}
		out = append(out, id)
	}
	return out, nil
}

func resolvePermissions(role string, modules []string) ([]string, error) {
	if len(modules) == 0 {
		return permission.DefaultPermissions(role), nil
	}
	return ExpandModules(modules)
}

func (uc *StaffUseCase) record(ctx context.Context, actor ports.Actor, action, id string, details map[string]any) {
	if uc.activity != nil {
		uc.activity.Record(ctx, actor, action, "staff", id, details)
	}
}

// ToStaffResponse mapea la entidad a DTO (nunca expone el hash).
func ToStaffResponse(st *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:          st.ID,
		Name:        st.Name,
		Email:       st.Email,
		Phone:       st.Phone,
		Role:        st.Role,
		Permissions: st.Permissions,
		Modules:     ModulesFromPermissions(st.Permissions),
		BranchIDs:   st.BranchIDs,
		IsActive:    st.IsActive,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}
