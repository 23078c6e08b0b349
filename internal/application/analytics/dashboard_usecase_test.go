package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/application/state"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/metrics"
)

func TestBuild_KPIsDelPeriodoTotal(t *testing.T) {
	st := state.NewStore()
	st.SetLeads([]entity.Lead{
		{ID: "1", Stage: entity.StageWon, Source: entity.SourceForm, Value: decimal.NewFromInt(1000), CreatedAt: "2026-08-29T10:00:00Z"},
		{ID: "2", Stage: entity.StageNew, Source: entity.SourceWhatsApp, Value: decimal.NewFromInt(500), CreatedAt: "2026-08-29T11:00:00Z"},
	})
	uc := NewDashboardUseCase()

	resp := uc.Build("u1", st, "", time.Now())

	assert.Equal(t, metrics.WindowTotal, resp.Period, "período vacío equivale a total")
	assert.Equal(t, 2, resp.KPIs.Total)
	assert.Equal(t, 1, resp.KPIs.Won)
	assert.Equal(t, "50.0", resp.KPIs.ConversionRate)
	assert.Equal(t, "1000", resp.KPIs.WonValue)
	assert.Len(t, resp.Channels, 2)
}

func TestBuild_MemoizaPorVersion(t *testing.T) {
	st := state.NewStore()
	st.SetLeads([]entity.Lead{
		{ID: "1", Stage: entity.StageNew, Source: entity.SourceForm, CreatedAt: "2026-08-29T10:00:00Z", Value: decimal.Zero},
	})
	uc := NewDashboardUseCase()
	now := time.Now()

	first := uc.Build("u1", st, metrics.WindowTotal, now)
	cached := uc.Build("u1", st, metrics.WindowTotal, now)
	assert.Equal(t, first, cached)

	st.PrependLead(entity.Lead{ID: "2", Stage: entity.StageWon, Source: entity.SourceForm, CreatedAt: "2026-08-29T12:00:00Z", Value: decimal.NewFromInt(10)})
	refreshed := uc.Build("u1", st, metrics.WindowTotal, now)

	assert.Equal(t, 2, refreshed.KPIs.Total, "una mutación invalida la caché")
	assert.Equal(t, 1, refreshed.KPIs.Won)
}

func TestBuild_NoSirveCacheDeOtraSesion(t *testing.T) {
	uc := NewDashboardUseCase()
	now := time.Now()

	primera := state.NewStore()
	primera.SetLeads([]entity.Lead{
		{ID: "1", Stage: entity.StageNew, Source: entity.SourceForm, CreatedAt: "2026-08-29T10:00:00Z", Value: decimal.Zero},
	})
	resp := uc.Build("u1", primera, metrics.WindowTotal, now)
	assert.Equal(t, 1, resp.KPIs.Total)

	// Mismo usuario tras salir y volver a entrar: almacén nuevo, misma versión.
	segunda := state.NewStore()
	segunda.SetLeads([]entity.Lead{
		{ID: "1", Stage: entity.StageNew, Source: entity.SourceForm, CreatedAt: "2026-08-29T10:00:00Z", Value: decimal.Zero},
		{ID: "2", Stage: entity.StageWon, Source: entity.SourceForm, CreatedAt: "2026-08-29T11:00:00Z", Value: decimal.NewFromInt(10)},
	})
	assert.Equal(t, primera.Version(), segunda.Version(), "ambos almacenes van por la misma versión")

	resp = uc.Build("u1", segunda, metrics.WindowTotal, now)
	assert.Equal(t, 2, resp.KPIs.Total, "la caché de la sesión anterior no se sirve a la nueva")
}
