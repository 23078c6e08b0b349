package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// LeadRepository acceso persistente a leads. Las lecturas devuelven los leads
// ordenados por fecha de creación descendente (los nuevos primero).
type LeadRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]entity.Lead, error)
	ListByOwner(ctx context.Context, companyID, ownerID string) ([]entity.Lead, error)
	Insert(ctx context.Context, lead *entity.Lead) error
	// Update reemplaza los campos mutables del lead. Devuelve
	// domain.ErrNotFound si el id no existe en la empresa.
	Update(ctx context.Context, lead *entity.Lead) error
	UpdateStage(ctx context.Context, companyID, id, stage string) error
	// Delete es idempotente: borrar un id inexistente no es error.
	Delete(ctx context.Context, companyID, id string) error
}
