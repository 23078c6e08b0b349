package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/export"
	"github.com/jhoicas/crm-api/internal/application/leads"
	"github.com/jhoicas/crm-api/internal/application/session"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// LeadHandler endpoints del pipeline de leads.
type LeadHandler struct {
	gate  *session.Gate
	users *usecase.UserUseCase
	pdf   export.PDFRenderer
}

// NewLeadHandler crea el handler de leads.
func NewLeadHandler(gate *session.Gate, users *usecase.UserUseCase, pdf export.PDFRenderer) *LeadHandler {
	return &LeadHandler{gate: gate, users: users, pdf: pdf}
}

// ownerNames mapa id→nombre de los usuarios de la empresa, para el CSV.
func (h *LeadHandler) ownerNames(c *fiber.Ctx, companyID string) map[string]string {
	users, err := h.users.ListUsers(c.Context(), companyID)
	if err != nil {
		return map[string]string{}
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func (h *LeadHandler) sessionOf(c *fiber.Ctx) (*session.Session, error) {
	return h.gate.Resume(c.Context(), GetUserID(c))
}

// List godoc
// @Summary      Listar leads de la sesión
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        stage  query string false "Filtrar por etapa"
// @Param        source query string false "Filtrar por origen"
// @Param        owner  query string false "Filtrar por dueño"
// @Param        q      query string false "Buscar en nombre, empresa y email"
// @Success      200 {array} dto.LeadResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	sess, err := h.sessionOf(c)
	if err != nil {
		return respondError(c, err)
	}
	filter := leads.Filter{
		Stage:  c.Query("stage"),
		Source: c.Query("source"),
		Owner:  c.Query("owner"),
		Query:  c.Query("q"),
	}
	return c.JSON(dto.ToLeadResponses(filter.Apply(sess.Leads.Leads())))
}

// Create godoc
// @Summary      Crear un lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateLeadRequest true "Lead"
// @Success      201 {object} dto.LeadResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	sess, err := h.sessionOf(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.CreateLeadRequest
	if !parseBody(c, &req) {
		return nil
	}
	created, err := sess.Leads.Create(c.Context(), entity.Lead{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Source:  req.Source,
		Value:   req.Value,
		Stage:   req.Stage,
		Notes:   req.Notes,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLeadResponse(created))
}

// Update godoc
// @Summary      Editar un lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                true "ID del lead"
// @Param        request body dto.UpdateLeadRequest true "Campos a cambiar"
// @Success      200 {object} dto.LeadResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	sess, err := h.sessionOf(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateLeadRequest
	if !parseBody(c, &req) {
		return nil
	}
	current, ok := sess.Leads.Get(c.Params("id"))
	if !ok {
		return respondError(c, domain.ErrNotFound)
	}
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Company != nil {
		current.Company = *req.Company
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}
	if req.Source != nil {
		current.Source = *req.Source
	}
	if req.Value != nil {
		current.Value = *req.Value
	}
	if req.Stage != nil {
		current.Stage = *req.Stage
	}
	if req.Notes != nil {
		current.Notes = *req.Notes
	}
	updated, err := sess.Leads.Update(c.Context(), current)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToLeadResponse(updated))
}

// UpdateStage godoc
// @Summary      Mover un lead de etapa
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                 true "ID del lead"
// @Param        request body dto.UpdateStageRequest true "Etapa destino"
// @Success      200 {object} dto.LeadResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/leads/{id}/stage [patch]
func (h *LeadHandler) UpdateStage(c *fiber.Ctx) error {
	sess, err := h.sessionOf(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateStageRequest
	if !parseBody(c, &req) {
		return nil
	}
	moved, err := sess.Leads.UpdateStage(c.Context(), c.Params("id"), req.Stage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToLeadResponse(moved))
}

// Delete godoc
// @Summary      Eliminar un lead
// @Tags         leads
// @Security     BearerAuth
// @Param        id path string true "ID del lead"
// @Success      204
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	sess, err := h.sessionOf(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := sess.Leads.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCSV godoc
// @Summary      Exportar leads a CSV
// @Tags         leads
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {string} string "archivo CSV"
// @Router       /api/leads/export/csv [get]
func (h *LeadHandler) ExportCSV(c *fiber.Ctx) error {
	sess, err := h.sessionOf(c)
	if err != nil {
		return respondError(c, err)
	}
	if !sess.Capabilities.CanExport {
		return respondError(c, domain.ErrForbidden)
	}
	body := export.LeadsCSV(sess.Leads.Leads(), h.ownerNames(c, sess.User.CompanyID))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.CSVFilename(time.Now())+`"`)
	return c.Send(body)
}

// ExportPDF godoc
// @Summary      Exportar leads a PDF
// @Tags         leads
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200 {string} string "archivo PDF"
// @Router       /api/leads/export/pdf [get]
func (h *LeadHandler) ExportPDF(c *fiber.Ctx) error {
	sess, err := h.sessionOf(c)
	if err != nil {
		return respondError(c, err)
	}
	if !sess.Capabilities.CanExport {
		return respondError(c, domain.ErrForbidden)
	}
	body, err := h.pdf.RenderLeads(sess.Leads.Leads(), sess.CompanyName)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="leads_`+time.Now().Format("2006-01-02")+`.pdf"`)
	return c.Send(body)
}
