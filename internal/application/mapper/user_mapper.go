package mapper

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// UserRecord fila cruda de crm_users.
type UserRecord struct {
	ID         string
	AuthUserID string
	CompanyID  string
	Email      *string
	Name       *string
	Role       *string
	IsActive   *bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UserFromRecord normaliza una fila de perfil. Rol ausente cae a vendedor
// (el permiso más restrictivo); activo ausente cae a true.
func UserFromRecord(r UserRecord) entity.User {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return entity.User{
		ID:         r.ID,
		AuthUserID: r.AuthUserID,
		CompanyID:  r.CompanyID,
		Email:      strOr(r.Email, ""),
		Name:       strOr(r.Name, ""),
		Role:       strOr(r.Role, entity.RoleVendedor),
		IsActive:   isActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
