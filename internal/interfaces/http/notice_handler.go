package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/session"
)

// NoticeHandler endpoints de avisos efímeros de la sesión.
type NoticeHandler struct {
	gate *session.Gate
}

// NewNoticeHandler crea el handler de avisos.
func NewNoticeHandler(gate *session.Gate) *NoticeHandler {
	return &NoticeHandler{gate: gate}
}

// List godoc
// @Summary      Avisos pendientes de la sesión
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.NoticeResponse
// @Router       /api/notices [get]
func (h *NoticeHandler) List(c *fiber.Ctx) error {
	sess, err := h.gate.Resume(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToNoticeResponses(sess.Notices.Pending()))
}

// Dismiss godoc
// @Summary      Descartar un aviso
// @Tags         notices
// @Security     BearerAuth
// @Param        id path string true "ID del aviso"
// @Success      204
// @Router       /api/notices/{id} [delete]
func (h *NoticeHandler) Dismiss(c *fiber.Ctx) error {
	sess, err := h.gate.Resume(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	sess.Notices.Dismiss(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
