package repository

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	List(ctx context.Context, tenantID string, includeInactive bool) ([]*entity.Branch, error)
}
