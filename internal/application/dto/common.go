package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// Códigos de error expuestos por la API.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeEmailTaken       = "EMAIL_ALREADY_EXISTS"
	CodeProfileMissing   = "PROFILE_MISSING"
	CodeInactiveAccount  = "INACTIVE_ACCOUNT"
	CodeConfigError      = "CONFIGURATION_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeSessionNotActive = "SESSION_NOT_ACTIVE"
)
