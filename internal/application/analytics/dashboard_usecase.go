// Package analytics arma la respuesta del dashboard a partir del conjunto de
// trabajo de la sesión. El cálculo se memoiza por versión del conjunto: pedir
// el mismo período sin mutaciones de por medio no recalcula nada.
package analytics

import (
	"sync"
	"time"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/state"
	"github.com/jhoicas/crm-api/internal/domain/metrics"
)

type cacheKey struct {
	userID string
	period string
}

// cacheEntry guarda también el almacén de origen: la versión arranca de cero
// en cada sesión, así que sola no distingue una sesión nueva del mismo
// usuario de la anterior.
type cacheEntry struct {
	store   *state.Store
	version uint64
	resp    dto.DashboardResponse
}

// DashboardUseCase calcula los indicadores del dashboard.
type DashboardUseCase struct {
	mu    sync.Mutex
	cache map[cacheKey]cacheEntry
}

// NewDashboardUseCase crea el caso de uso con su caché vacía.
func NewDashboardUseCase() *DashboardUseCase {
	return &DashboardUseCase{cache: make(map[cacheKey]cacheEntry)}
}

// Build calcula KPIs, serie diaria y desglose por canal sobre el conjunto de
// la sesión, para la ventana pedida. Período vacío equivale a total. Las tres
// secciones se calculan en paralelo sobre el mismo filtrado.
func (uc *DashboardUseCase) Build(userID string, store *state.Store, period string, now time.Time) dto.DashboardResponse {
	if period == "" {
		period = metrics.WindowTotal
	}
	key := cacheKey{userID: userID, period: period}
	version := store.Version()

	uc.mu.Lock()
	if entry, ok := uc.cache[key]; ok && entry.store == store && entry.version == version {
		uc.mu.Unlock()
		return entry.resp
	}
	uc.mu.Unlock()

	filtered := metrics.FilterByWindow(store.Leads(), period, now)

	var (
		wg       sync.WaitGroup
		summary  metrics.Summary
		daily    []metrics.DailyPoint
		channels []metrics.ChannelCount
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		summary = metrics.Summarize(filtered)
	}()
	go func() {
		defer wg.Done()
		daily = metrics.DailySeries(filtered)
	}()
	go func() {
		defer wg.Done()
		channels = metrics.ChannelBreakdown(filtered)
	}()
	wg.Wait()

	resp := dto.DashboardResponse{
		Period: period,
		KPIs: dto.KPIResponse{
			Total:          summary.Total,
			Won:            summary.Won,
			ConversionRate: summary.ConversionRate,
			WonValue:       summary.WonValue.String(),
		},
		Daily:    make([]dto.DailyPointResponse, len(daily)),
		Channels: make([]dto.ChannelResponse, len(channels)),
	}
	for i, p := range daily {
		resp.Daily[i] = dto.DailyPointResponse{Date: p.Date, Count: p.Count, Won: p.Won}
	}
	for i, ch := range channels {
		resp.Channels[i] = dto.ChannelResponse{
			Channel:        ch.Channel,
			Count:          ch.Count,
			Won:            ch.Won,
			ConversionRate: ch.ConversionRate,
		}
	}

	uc.mu.Lock()
	uc.cache[key] = cacheEntry{store: store, version: version, resp: resp}
	uc.mu.Unlock()
	return resp
}
