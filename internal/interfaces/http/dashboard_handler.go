package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/session"
	"github.com/jhoicas/crm-api/internal/domain/metrics"
)

// DashboardHandler endpoint de indicadores.
type DashboardHandler struct {
	gate      *session.Gate
	dashboard *analytics.DashboardUseCase
}

// NewDashboardHandler crea el handler del dashboard.
func NewDashboardHandler(gate *session.Gate, dashboard *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{gate: gate, dashboard: dashboard}
}

// Get godoc
// @Summary      Indicadores del dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period query string false "Ventana de tiempo" Enums(today, 7days, 30days, total)
// @Success      200 {object} dto.DashboardResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	period := c.Query("period", metrics.WindowTotal)
	switch period {
	case metrics.WindowToday, metrics.Window7Days, metrics.Window30Days, metrics.WindowTotal:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    dto.CodeInvalidInput,
			Message: "period debe ser today, 7days, 30days o total",
		})
	}
	sess, err := h.gate.Resume(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.dashboard.Build(sess.User.ID, sess.Store, period, time.Now()))
}
