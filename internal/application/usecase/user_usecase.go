package usecase

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/application/staff"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// UserUseCase lectura de la cuenta dueña y del perfil de sesión.
type UserUseCase struct {
	repo      repository.UserRepository
	staffRepo repository.StaffRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, staffRepo repository.StaffRepository) *UserUseCase {
	return &UserUseCase{repo: repo, staffRepo: staffRepo}
}

// Profile devuelve el negocio (tenant) del actor y, para personal, su ficha.
func (uc *UserUseCase) Profile(ctx context.Context, actor ports.Actor) (*dto.ProfileResponse, error) {
	user, err := uc.repo.GetByID(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := &dto.ProfileResponse{
		Role: actor.Role,
		User: &dto.UserResponse{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			BusinessName: user.BusinessName,
			Status:       user.Status,
			CreatedAt:    user.CreatedAt,
		},
	}
	if actor.StaffID == "" {
		return out, nil
	}
	st, err := uc.staffRepo.GetByID(ctx, actor.TenantID, actor.StaffID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	out.Staff = staff.ToStaffResponse(st)
	return out, nil
}
