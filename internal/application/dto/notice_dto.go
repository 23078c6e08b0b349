package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// NoticeResponse aviso efímero pendiente de la sesión.
type NoticeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToNoticeResponses convierte avisos preservando el orden.
func ToNoticeResponses(notices []entity.Notice) []NoticeResponse {
	out := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		out[i] = NoticeResponse{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Severity:    n.Severity,
			CreatedAt:   n.CreatedAt,
		}
	}
	return out
}
