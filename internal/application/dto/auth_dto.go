package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest alta de empresa + primer usuario administrador.
type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=2"`
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

// LoginResponse sesión emitida tras autenticarse.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
