package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CompanyRepository acceso a empresas (tenants).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
