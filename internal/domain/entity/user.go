package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un perfil CRM (pertenece a una Company). La credencial vive
// aparte, en AuthAccount; AuthUserID es el vínculo entre ambos.
type User struct {
	ID         string
	AuthUserID string
	CompanyID  string
	Email      string
	Name       string
	Role       string // admin, vendedor
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AuthAccount credencial de acceso gestionada por el colaborador de auth.
type AuthAccount struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	CreatedAt    time.Time
}
