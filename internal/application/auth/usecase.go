package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/staff"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
	"github.com/chukwumela909/Web-App-sub001/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

const statusActive = "active"

// DefaultBranchName nombre de la sucursal que se crea al registrar un negocio.
const DefaultBranchName = "Principal"

// AuthUseCase casos de uso de autenticación: registro de dueños y login de dueños y personal.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	staffRepo  repository.StaffRepository
	branchRepo repository.BranchRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	staffRepo repository.StaffRepository,
	branchRepo repository.BranchRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, staffRepo: staffRepo, branchRepo: branchRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea la cuenta dueña (el tenant) y su sucursal principal.
// Devuelve ErrEmailAlreadyExists si el email ya pertenece a un dueño o a un empleado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if taken, err := uc.emailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		BusinessName: strings.TrimSpace(in.BusinessName),
		Status:       statusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	if uc.branchRepo != nil {
		branch := &entity.Branch{
			ID:        uuid.New().String(),
			TenantID:  user.ID,
			Name:      DefaultBranchName,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.branchRepo.Create(ctx, branch); err != nil {
			return nil, err
		}
	}
	return toUserResponse(user), nil
}

// Login verifica email/password del dueño, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != statusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		TenantID: user.ID,
		Role:     entity.RoleOwner,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Role:  entity.RoleOwner,
		User:  toUserResponse(user),
	}, nil
}

// StaffLogin login del personal. El token lleva el tenant del empleado y su id de staff.
func (uc *AuthUseCase) StaffLogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	st, err := uc.staffRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !st.IsActive {
		return nil, domain.ErrInactiveStaff
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   st.ID,
		TenantID: st.TenantID,
		Role:     st.Role,
		StaffID:  st.ID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Role:  st.Role,
		Staff: staff.ToStaffResponse(st),
	}, nil
}

func (uc *AuthUseCase) emailTaken(ctx context.Context, email string) (bool, error) {
	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if u != nil {
		return true, nil
	}
	if uc.staffRepo == nil {
		return false, nil
	}
	st, err := uc.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return st != nil, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		BusinessName: u.BusinessName,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
	}
}
