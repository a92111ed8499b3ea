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

// DebtorUseCase clientes con saldo pendiente y sus abonos.
type DebtorUseCase struct {
	repo     repository.DebtorRepository
	activity ports.ActivityRecorder
}

// NewDebtorUseCase construye el caso de uso. activity puede ser nil.
func NewDebtorUseCase(repo repository.DebtorRepository, activity ports.ActivityRecorder) *DebtorUseCase {
	return &DebtorUseCase{repo: repo, activity: activity}
}

// Create registra un deudor con su deuda inicial.
func (uc *DebtorUseCase) Create(ctx context.Context, actor ports.Actor, in dto.CreateDebtorRequest) (*dto.DebtorResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.TotalOwed.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	d := &entity.Debtor{
		ID:        uuid.New().String(),
		TenantID:  actor.TenantID,
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		TotalOwed: in.TotalOwed.Round(2),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "debtor.create", d.ID, nil)
	return toDebtorResponse(d, nil), nil
}

// GetByID deudor con su historial de abonos.
func (uc *DebtorUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.DebtorResponse, error) {
	d, err := uc.load(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.repo.ListPayments(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return toDebtorResponse(d, payments), nil
}

// List lista deudores con su saldo.
func (uc *DebtorUseCase) List(ctx context.Context, tenantID string, page dto.PageRequest) ([]dto.DebtorResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DebtorResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDebtorResponse(d, nil))
	}
	return out, nil
}

// AddPayment registra un abono. No puede superar el saldo pendiente.
func (uc *DebtorUseCase) AddPayment(ctx context.Context, actor ports.Actor, debtorID string, in dto.DebtorPaymentRequest) (*dto.DebtorResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	d, err := uc.load(ctx, actor.TenantID, debtorID)
	if err != nil {
		return nil, err
	}
	amount := in.Amount.Round(2)
	if amount.GreaterThan(d.Balance()) {
		return nil, fmt.Errorf("%w: el abono supera el saldo de %s", domain.ErrInvalidInput, d.Balance().StringFixed(2))
	}
	method := in.Method
	if method == "" {
		method = entity.PaymentCash
	}
	p := &entity.DebtorPayment{
		ID:        uuid.New().String(),
		TenantID:  actor.TenantID,
		DebtorID:  d.ID,
		Amount:    amount,
		Method:    method,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedBy: actor.UserID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.AddPayment(ctx, p); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "debtor.payment", d.ID, map[string]any{"amount": amount.String()})
	return uc.GetByID(ctx, actor.TenantID, d.ID)
}

func (uc *DebtorUseCase) load(ctx context.Context, tenantID, id string) (*entity.Debtor, error) {
	d, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (uc *DebtorUseCase) record(ctx context.Context, actor ports.Actor, action, id string, details map[string]any) {
	if uc.activity != nil {
		uc.activity.Record(ctx, actor, action, "debtor", id, details)
	}
}

func toDebtorResponse(d *entity.Debtor, payments []*entity.DebtorPayment) *dto.DebtorResponse {
	resp := &dto.DebtorResponse{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		TotalOwed: d.TotalOwed,
		TotalPaid: d.TotalPaid,
		Balance:   d.Balance(),
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.DebtorPaymentResponse{
			ID:        p.ID,
			DebtorID:  p.DebtorID,
			Amount:    p.Amount,
			Method:    p.Method,
			Notes:     p.Notes,
			CreatedAt: p.CreatedAt,
		})
	}
	return resp
}
