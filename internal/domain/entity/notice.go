package entity

import "time"

// Severidades de un aviso.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
)

// Notice aviso efímero (toast) dirigido al usuario de la sesión. No se
// persiste: se auto-destruye tras la ventana de visibilidad o al descartarlo.
type Notice struct {
	ID          string
	Title       string
	Description string
	Severity    string
	CreatedAt   time.Time
}
