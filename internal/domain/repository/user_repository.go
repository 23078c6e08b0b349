package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// UserRepository acceso a perfiles CRM.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByAuthUserID busca el perfil vinculado a una identidad autenticada.
	// Devuelve (nil, nil) cuando la identidad no tiene perfil.
	GetByAuthUserID(ctx context.Context, authUserID string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string) ([]entity.User, error)
	// UpdateProfile actualiza nombre, rol y estado activo.
	UpdateProfile(ctx context.Context, user *entity.User) error
}
