package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func TestLeadsCSV_FormatoYComillas(t *testing.T) {
	leads := []entity.Lead{
		{
			Name:      `Ana "La Jefa" Gómez`,
			Company:   "Acme, S.A.",
			Email:     "ana@acme.com",
			Phone:     "+57 300 123 4567",
			Source:    entity.SourceWhatsApp,
			Value:     decimal.NewFromInt(2500),
			Stage:     entity.StageWon,
			CreatedAt: "2026-08-29T10:00:00Z",
			OwnerID:   "u1",
		},
	}
	owners := map[string]string{"u1": "Beto Ruiz"}

	out := string(LeadsCSV(leads, owners))
	lines := strings.SplitN(out, "\n", 2)

	require.Len(t, lines, 2)
	assert.Equal(t,
		`"Nombre","Empresa","Email","Teléfono","Origen","Etapa",Valor,"Propietario","Fecha de Creación"`,
		lines[0])
	assert.Contains(t, lines[1], `"Ana ""La Jefa"" Gómez"`, "las comillas internas se duplican")
	assert.Contains(t, lines[1], `"Acme, S.A."`, "las comas viven dentro de comillas")
	assert.Contains(t, lines[1], `"WhatsApp"`, "el origen sale con etiqueta legible")
	assert.Contains(t, lines[1], `"Venta Cerrada"`)
	assert.Contains(t, lines[1], `,2500,`, "el valor numérico va sin comillas")
	assert.Contains(t, lines[1], `"Beto Ruiz"`, "el dueño sale con nombre, no con id")
	assert.False(t, strings.HasSuffix(out, "\n"), "sin salto de línea final")
}

func TestLeadsCSV_SinLeads(t *testing.T) {
	out := string(LeadsCSV(nil, nil))

	assert.Equal(t,
		`"Nombre","Empresa","Email","Teléfono","Origen","Etapa",Valor,"Propietario","Fecha de Creación"`,
		out, "solo el encabezado")
}

func TestLeadsCSV_DuenoDesconocidoYFechaIlegible(t *testing.T) {
	leads := []entity.Lead{{
		Name:      "Ana",
		CreatedAt: "not-a-date",
		Source:    entity.SourceOther,
		Stage:     entity.StageNew,
		Value:     decimal.Zero,
		OwnerID:   "fantasma",
	}}

	out := string(LeadsCSV(leads, map[string]string{}))

	assert.Contains(t, out, `"not-a-date"`, "la fecha ilegible sale tal cual")
	assert.Contains(t, out, `,"",`, "dueño desconocido sale vacío")
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "leads_2026-08-30.csv", CSVFilename(now))
}
