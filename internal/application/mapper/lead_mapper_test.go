package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestLeadFromRecord_DefaultsConCamposNulos(t *testing.T) {
	r := LeadRecord{ID: "l1", CompanyID: "c1"}

	l := LeadFromRecord(r)

	assert.Equal(t, "l1", l.ID)
	assert.Equal(t, "c1", l.CompanyID)
	assert.Equal(t, entity.SourceOther, l.Source, "origen ausente cae a 'otros'")
	assert.Equal(t, entity.StageNew, l.Stage, "etapa ausente cae a 'nuevo'")
	assert.True(t, l.Value.IsZero())
	assert.Empty(t, l.Name)
}

func TestLeadFromRecord_SinFechaEstampaAhora(t *testing.T) {
	r := LeadRecord{ID: "l1", CompanyID: "c1"}

	l := LeadFromRecord(r)

	parsed, err := time.Parse(time.RFC3339, l.CreatedAt)
	require.NoError(t, err, "sin columna de fecha se estampa la hora actual, nunca queda vacía")
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestLeadFromRecord_PrefiereColumnaActual(t *testing.T) {
	r := LeadRecord{
		ID:           "l1",
		CreatedAt:    strPtr("2026-08-29T10:00:00Z"),
		CreationDate: strPtr("2020-01-01T00:00:00Z"),
	}

	l := LeadFromRecord(r)

	assert.Equal(t, "2026-08-29T10:00:00Z", l.CreatedAt)
}

func TestLeadFromRecord_CaeAColumnaHeredada(t *testing.T) {
	r := LeadRecord{ID: "l1", CreationDate: strPtr("2020-01-01T00:00:00Z")}

	l := LeadFromRecord(r)

	assert.Equal(t, "2020-01-01T00:00:00Z", l.CreatedAt)
}

func TestLeadFromRecord_ConservaFechaIlegible(t *testing.T) {
	r := LeadRecord{ID: "l1", CreatedAt: strPtr("not-a-date")}

	l := LeadFromRecord(r)

	assert.Equal(t, "not-a-date", l.CreatedAt, "el mapper no valida fechas, eso es del motor de métricas")
}

func TestLeadToRecord_OpcionalesVaciosEnNull(t *testing.T) {
	l := entity.Lead{
		ID:        "l1",
		Name:      "Ana",
		Source:    entity.SourceOther,
		Stage:     entity.StageNew,
		CreatedAt: "2026-08-29T10:00:00Z",
		CompanyID: "c1",
	}

	r := LeadToRecord(l)

	assert.Nil(t, r.Company, "texto opcional vacío va a NULL, no a cadena vacía")
	assert.Nil(t, r.Email)
	assert.Nil(t, r.Phone)
	assert.Nil(t, r.Notes)
	assert.Nil(t, r.OwnerID)
	require.NotNil(t, r.Name)
	assert.Equal(t, "Ana", *r.Name)
}

func TestLeadRoundTrip(t *testing.T) {
	original := entity.Lead{
		ID:        "l1",
		Name:      "Ana Gómez",
		Company:   "Acme",
		Email:     "ana@acme.com",
		Phone:     "+57 300 123 4567",
		Source:    entity.SourceWhatsApp,
		Value:     decimal.NewFromInt(2500),
		CreatedAt: "2026-08-29T10:00:00Z",
		Stage:     entity.StageMeeting,
		OwnerID:   "u1",
		Notes:     "Llamar el lunes",
		CompanyID: "c1",
	}

	back := LeadFromRecord(LeadToRecord(original))

	assert.Equal(t, original, back, "entidad→fila→entidad no pierde información")
}
