package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// Claves en Locals que deja el middleware de autenticación.
const (
	localUserID    = "user_id"
	localCompanyID = "company_id"
	localRole      = "role"
)

// AuthMiddleware valida el token Bearer y deja la identidad en Locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    dto.CodeUnauthorized,
				Message: "token requerido",
			})
		}
		userID, companyID, role, err := jwt.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    dto.CodeUnauthorized,
				Message: "token inválido o expirado",
			})
		}
		c.Locals(localUserID, userID)
		c.Locals(localCompanyID, companyID)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol del token no está en la lista.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    dto.CodeForbidden,
			Message: "rol sin permiso para esta operación",
		})
	}
}

// GetUserID devuelve el id de usuario dejado por AuthMiddleware.
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localUserID).(string); ok {
		return v
	}
	return ""
}

// GetCompanyID devuelve el id de empresa dejado por AuthMiddleware.
func GetCompanyID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localCompanyID).(string); ok {
		return v
	}
	return ""
}

// GetRole devuelve el rol dejado por AuthMiddleware.
func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(localRole).(string); ok {
		return v
	}
	return ""
}
