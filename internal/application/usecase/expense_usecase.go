package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ExpenseUseCase registro de gastos operativos.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	branches repository.BranchRepository
	activity ports.ActivityRecorder
}

// NewExpenseUseCase construye el caso de uso. activity puede ser nil.
func NewExpenseUseCase(repo repository.ExpenseRepository, branches repository.BranchRepository, activity ports.ActivityRecorder) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, branches: branches, activity: activity}
}

// Create registra un gasto. Sin fecha se usa la de hoy (UTC).
func (uc *ExpenseUseCase) Create(ctx context.Context, actor ports.Actor, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !in.Amount.IsPositive() || strings.TrimSpace(in.Category) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := in.Date
	if date == "" {
		date = now.UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.BranchID != "" {
		b, err := uc.branches.GetByID(ctx, actor.TenantID, in.BranchID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.ErrNotFound
		}
	}
	e := &entity.Expense{
		ID:          uuid.New().String(),
		TenantID:    actor.TenantID,
		BranchID:    in.BranchID,
		Category:    normalizeLabel(in.Category),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount.Round(2),
		Date:        date,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.record(ctx, actor, "expense.create", e.ID, map[string]any{"amount": e.Amount.String()})
	return toExpenseResponse(e), nil
}

// List lista gastos por sucursal y rango de fechas.
func (uc *ExpenseUseCase) List(ctx context.Context, tenantID string, in dto.ExpenseFilterRequest) ([]dto.ExpenseResponse, error) {
	in.DefaultPage()
	list, err := uc.repo.List(ctx, tenantID, repository.ExpenseFilter{
		BranchID: in.BranchID,
		From:     in.From,
		To:       in.To,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// Delete borrado lógico del gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if err := uc.repo.SoftDelete(ctx, actor.TenantID, id); err != nil {
		return err
	}
	uc.record(ctx, actor, "expense.delete", id, nil)
	return nil
}

func (uc *ExpenseUseCase) record(ctx context.Context, actor ports.Actor, action, id string, details map[string]any) {
	if uc.activity != nil {
		uc.activity.Record(ctx, actor, action, "expense", id, details)
	}
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		BranchID:    e.BranchID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}
