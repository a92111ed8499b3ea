package repository

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para las cuentas dueñas (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
