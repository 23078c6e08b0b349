package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/session"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// AuthHandler endpoints de autenticación y sesión.
type AuthHandler struct {
	gate  *session.Gate
	users *usecase.UserUseCase
	log   *logger.Logger
}

// NewAuthHandler crea el handler de autenticación.
func NewAuthHandler(gate *session.Gate, users *usecase.UserUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{gate: gate, users: users, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credenciales"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if !parseBody(c, &req) {
		return nil
	}
	token, sess, err := h.gate.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(&sess.User),
	})
}

// Register godoc
// @Summary      Registrar empresa y primer administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Datos de registro"
// @Success      201 {object} dto.UserResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if !parseBody(c, &req) {
		return nil
	}
	user, err := h.users.Register(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToUserResponse(user))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.gate.Logout(GetUserID(c))
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Perfil y permisos de la sesión actual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, err := h.gate.Resume(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"user": dto.ToUserResponse(&sess.User),
		"capabilities": fiber.Map{
			"can_view_all_leads":  sess.Capabilities.CanViewAllLeads,
			"can_manage_users":    sess.Capabilities.CanManageUsers,
			"can_act_on_any_lead": sess.Capabilities.CanActOnAnyLead,
			"can_export":          sess.Capabilities.CanExport,
		},
	})
}
