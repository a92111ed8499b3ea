package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales.
type BranchUseCase struct {
	repo     repository.BranchRepository
	cache    ports.Cache
	activity ports.ActivityRecorder
}

// NewBranchUseCase construye el caso de uso. cache y activity pueden ser nil.
func NewBranchUseCase(repo repository.BranchRepository, cache ports.Cache, activity ports.ActivityRecorder) *BranchUseCase {
	return &BranchUseCase{repo: repo, cache: cache, activity: activity}
}

// Create crea una nueva sucursal activa.
func (uc *BranchUseCase) Create(ctx context.Context, actor ports.Actor, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:           uuid.New().String(),
		TenantID:     actor.TenantID,
		Name:         name,
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		OpeningHours: strings.TrimSpace(in.OpeningHours),
		ManagerID:    in.ManagerID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, branch); err != nil {
		return nil, err
	}
	uc.changed(ctx, actor, "branch.create", branch.ID)
	return ToBranchResponse(branch), nil
}

// GetByID obtiene una sucursal del tenant.
func (uc *BranchUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return ToBranchResponse(branch), nil
}

// Update actualiza una sucursal (campos opcionales).
func (uc *BranchUseCase) Update(ctx context.Context, actor ports.Actor, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		branch.Name = name
	}
	if in.Address != nil {
		branch.Address = strings.TrimSpace(*in.Address)
	}
	if in.City != nil {
		branch.City = strings.TrimSpace(*in.City)
	}
	if in.Phone != nil {
		branch.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		branch.Email = strings.TrimSpace(*in.Email)
	}
	if in.OpeningHours != nil {
		branch.OpeningHours = strings.TrimSpace(*in.OpeningHours)
	}
	if in.ManagerID != nil {
		branch.ManagerID = *in.ManagerID
	}
	if in.IsActive != nil {
		branch.IsActive = *in.IsActive
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, branch); err != nil {
		return nil, err
	}
	uc.changed(ctx, actor, "branch.update", branch.ID)
	return ToBranchResponse(branch), nil
}

// List lista las sucursales del tenant.
func (uc *BranchUseCase) List(ctx context.Context, tenantID string, includeInactive bool) ([]dto.BranchResponse, error) {
	list, err := uc.repo.List(ctx, tenantID, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *ToBranchResponse(b))
	}
	return items, nil
}

// Delete desactiva la sucursal. El stock y los movimientos se conservan.
// No se puede desactivar la última sucursal activa.
func (uc *BranchUseCase) Delete(ctx context.Context, actor ports.Actor, id string) error {
	branch, err := uc.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return err
	}
	if branch == nil || !branch.IsActive {
		return domain.ErrNotFound
	}
	active, err := uc.repo.List(ctx, actor.TenantID, false)
	if err != nil {
		return err
	}
	if len(active) <= 1 {
		return fmt.Errorf("%w: no se puede desactivar la última sucursal", domain.ErrConflict)
	}
	branch.IsActive = false
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, branch); err != nil {
		return err
	}
	uc.changed(ctx, actor, "branch.delete", branch.ID)
	return nil
}

func (uc *BranchUseCase) changed(ctx context.Context, actor ports.Actor, action, id string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, ports.DashboardKeys(actor.TenantID)...)
	}
	if uc.activity != nil {
		uc.activity.Record(ctx, actor, action, "branch", id, nil)
	}
}

// ToBranchResponse mapea la entidad a DTO.
func ToBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:           b.ID,
		Name:         b.Name,
		Address:      b.Address,
		City:         b.City,
		Phone:        b.Phone,
		Email:        b.Email,
		OpeningHours: b.OpeningHours,
		ManagerID:    b.ManagerID,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
