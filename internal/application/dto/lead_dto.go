package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// LeadResponse lead expuesto por la API.
type LeadResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Company   string          `json:"company"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Source    string          `json:"source"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt string          `json:"created_at"`
	Stage     string          `json:"stage"`
	OwnerID   string          `json:"user_id"`
	Notes     string          `json:"notes"`
}

// CreateLeadRequest alta de un lead. Los campos opcionales reciben defaults
// (source "otros", stage "nuevo", value 0).
type CreateLeadRequest struct {
	Name    string          `json:"name" validate:"required,min=2"`
	Company string          `json:"company"`
	Email   string          `json:"email" validate:"omitempty,email"`
	Phone   string          `json:"phone"`
	Source  string          `json:"source" validate:"omitempty,oneof=formulario whatsapp redes_sociales referido otros"`
	Value   decimal.Decimal `json:"value"`
	Stage   string          `json:"stage" validate:"omitempty,oneof=nuevo en_proceso reunion_agendada seguimiento ganado perdido"`
	Notes   string          `json:"notes"`
	// OwnerID dueño explícito; vacío asigna el lead al usuario de la sesión.
	OwnerID string `json:"user_id" validate:"omitempty,uuid"`
}

// UpdateLeadRequest edición de un lead; solo los campos presentes cambian.
type UpdateLeadRequest struct {
	Name    *string          `json:"name" validate:"omitempty,min=2"`
	Company *string          `json:"company"`
	Email   *string          `json:"email" validate:"omitempty,email"`
	Phone   *string          `json:"phone"`
	Source  *string          `json:"source" validate:"omitempty,oneof=formulario whatsapp redes_sociales referido otros"`
	Value   *decimal.Decimal `json:"value"`
	Stage   *string          `json:"stage" validate:"omitempty,oneof=nuevo en_proceso reunion_agendada seguimiento ganado perdido"`
	Notes   *string          `json:"notes"`
}

// UpdateStageRequest movimiento de un lead entre columnas del Kanban.
type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=nuevo en_proceso reunion_agendada seguimiento ganado perdido"`
}

// ToLeadResponse convierte la entidad al DTO de salida.
func ToLeadResponse(l entity.Lead) LeadResponse {
	return LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Company:   l.Company,
		Email:     l.Email,
		Phone:     l.Phone,
		Source:    l.Source,
		Value:     l.Value,
		CreatedAt: l.CreatedAt,
		Stage:     l.Stage,
		OwnerID:   l.OwnerID,
		Notes:     l.Notes,
	}
}

// ToLeadResponses convierte un slice de entidades preservando el orden.
func ToLeadResponses(leads []entity.Lead) []LeadResponse {
	out := make([]LeadResponse, len(leads))
	for i, l := range leads {
		out[i] = ToLeadResponse(l)
	}
	return out
}
