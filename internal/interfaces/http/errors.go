package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

// respondError traduce un error de dominio a la respuesta HTTP estándar.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: dto.CodeInvalidInput, Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: dto.CodeUnauthorized, Message: "credenciales inválidas",
		})
	case errors.Is(err, domain.ErrProfileMissing):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: dto.CodeProfileMissing, Message: "la identidad no tiene perfil en el CRM",
		})
	case errors.Is(err, domain.ErrInactiveAccount):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: dto.CodeInactiveAccount, Message: "la cuenta está desactivada",
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: dto.CodeForbidden, Message: "acceso denegado",
		})
	case errors.Is(err, domain.ErrPolicyRecursion):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: dto.CodeConfigError, Message: "error de configuración del almacén de datos",
		})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: dto.CodeEmailTaken, Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: dto.CodeNotFound, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: dto.CodeInternalError, Message: "error interno",
		})
	}
}
