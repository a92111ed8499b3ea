package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var maxRating = decimal.NewFromInt(5)

// SupplierUseCase casos de uso CRUD para proveedores; las lecturas incluyen el desempeño calculado.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	orders   repository.SupplierOrderRepository
	activity ports.ActivityRecorder
}

// NewSupplierUseCase construye el caso de uso. activity puede ser nil.
func NewSupplierUseCase(repo repository.SupplierRepository, orders repository.SupplierOrderRepository, activity ports.ActivityRecorder) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, orders: orders, activity: activity}
}

// Create crea un proveedor activo.
func (uc *SupplierUseCase) Create(ctx context.Context, actor ports.Actor, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	rating := decimal.Zero
	if in.Rating != nil {
		if !validRating(*in.Rating) {
			return nil, domain.ErrInvalidInput
		}
		rating = *in.Rating
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.New().String(),
		TenantID:      actor.TenantID,
		Name:          name,
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
		Address:       strings.TrimSpace(in.Address),
		Categories:    normalizeLabels(in.Categories),
		Rating:        rating,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "supplier.create", s.ID)
	return ToSupplierResponse(s, nil), nil
}

// GetByID obtiene un proveedor con sus métricas de desempeño.
func (uc *SupplierUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	perf, err := uc.performance(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(s, perf[s.ID]), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, actor ports.Actor, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		s.Name = name
	}
	if in.ContactPerson != nil {
		s.ContactPerson = strings.TrimSpace(*in.ContactPerson)
	}
	if in.Phone != nil {
		s.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		s.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		s.Address = strings.TrimSpace(*in.Address)
	}
	if in.Categories != nil {
		s.Categories = normalizeLabels(in.Categories)
	}
	if in.Rating != nil {
		if !validRating(*in.Rating) {
			return nil, domain.ErrInvalidInput
		}
		s.Rating = *in.Rating
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "supplier.update", s.ID)
	return ToSupplierResponse(s, nil), nil
}

// List lista proveedores con su desempeño.
func (uc *SupplierUseCase) List(ctx context.Context, tenantID string, page dto.PageRequest) (*dto.ListResponse[dto.SupplierResponse], error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	perf, err := uc.performance(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSupplierResponse(s, perf[s.ID]))
	}
	return &dto.ListResponse[dto.SupplierResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *SupplierUseCase) performance(ctx context.Context, tenantID string) (map[string]*entity.SupplierPerformance, error) {
	rows, err := uc.orders.Performance(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*entity.SupplierPerformance, len(rows))
	for i := range rows {
		out[rows[i].SupplierID] = &rows[i]
	}
	return out, nil
}

func (uc *SupplierUseCase) record(ctx context.Context, actor ports.Actor, action, id string) {
	if uc.activity != nil {
		uc.activity.Record(ctx, actor, action, "supplier", id, nil)
	}
}

func validRating(r decimal.Decimal) bool {
	return !r.IsNegative() && !r.GreaterThan(maxRating)
}

// ToSupplierResponse mapea la entidad a DTO; perf puede ser nil.
func ToSupplierResponse(s *entity.Supplier, perf *entity.SupplierPerformance) *dto.SupplierResponse {
	resp := &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Categories:    s.Categories,
		Rating:        s.Rating,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if perf != nil {
		resp.Performance = &dto.SupplierPerformanceDTO{
			TotalOrders:        perf.TotalOrders,
			OnTimeOrders:       perf.OnTimeOrders,
			OnTimeDeliveryRate: perf.OnTimeDeliveryRate,
			AverageRating:      perf.AverageRating,
			TotalSpent:         perf.TotalSpent,
			LastOrderAt:        perf.LastOrderAt,
		}
	}
	return resp
}
