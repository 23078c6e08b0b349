package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// AccountRepository credenciales del colaborador de autenticación.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.AuthAccount) error
	// GetByEmail devuelve (nil, nil) cuando el email no existe.
	GetByEmail(ctx context.Context, email string) (*entity.AuthAccount, error)
	GetByID(ctx context.Context, id string) (*entity.AuthAccount, error)
}
