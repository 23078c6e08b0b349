// Package metrics agrega leads en los indicadores del dashboard: KPIs,
// serie diaria y desglose por canal. Todo es puro sobre slices en memoria;
// el que llama decide sobre qué conjunto (empresa completa o solo propios).
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// Ventanas de tiempo soportadas por el dashboard.
const (
	WindowToday  = "today"
	Window7Days  = "7days"
	Window30Days = "30days"
	WindowTotal  = "total"
)

// maxChannels tope de canales en el desglose; el resto se descarta.
const maxChannels = 6

// Summary KPIs de una ventana.
type Summary struct {
	Total int
	Won   int
	// ConversionRate porcentaje ganados/total con exactamente un decimal
	// ("50.0"). "0.0" cuando no hay leads.
	ConversionRate string
	WonValue       decimal.Decimal
}

// DailyPoint un día con actividad dentro de la ventana.
type DailyPoint struct {
	Date  string // YYYY-MM-DD en hora local
	Count int
	Won   int
}

// ChannelCount actividad de un canal de origen.
type ChannelCount struct {
	Channel string // etiqueta legible
	Count   int
	Won     int
	// ConversionRate porcentaje ganados/total del canal, un decimal fijo.
	ConversionRate string
}

// conversionRate porcentaje won/total con exactamente un decimal; "0.0" sin
// leads.
func conversionRate(won, total int) string {
	if total == 0 {
		return "0.0"
	}
	return decimal.NewFromInt(int64(won)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		StringFixed(1)
}

// parseCreated intenta leer la fecha de creación de un lead. Las fechas
// ilegibles devuelven ok=false y el lead queda fuera de toda agregación
// temporal, nunca se le inventa una fecha.
func parseCreated(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Local(), true
		}
	}
	return time.Time{}, false
}

// windowStart devuelve el inicio de la ventana relativo a now, a partir de la
// medianoche local. ok=false significa sin corte (ventana total).
func windowStart(window string, now time.Time) (time.Time, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch window {
	case WindowToday:
		return midnight, true
	case Window7Days:
		return midnight.AddDate(0, 0, -7), true
	case Window30Days:
		return midnight.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// FilterByWindow filtra leads creados dentro de la ventana. Los de fecha
// ilegible quedan fuera de toda ventana, incluida la total: un lead sin fecha
// válida nunca aparece en una agregación.
func FilterByWindow(leads []entity.Lead, window string, now time.Time) []entity.Lead {
	start, bounded := windowStart(window, now)
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		created, ok := parseCreated(l.CreatedAt)
		if !ok {
			continue
		}
		if bounded && created.Before(start) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Summarize calcula los KPIs del conjunto recibido (ya filtrado por ventana).
func Summarize(leads []entity.Lead) Summary {
	s := Summary{ConversionRate: "0.0", WonValue: decimal.Zero}
	s.Total = len(leads)
	for _, l := range leads {
		if l.Stage == entity.StageWon {
			s.Won++
			s.WonValue = s.WonValue.Add(l.Value)
		}
	}
	s.ConversionRate = conversionRate(s.Won, s.Total)
	return s
}

// DailySeries agrupa los leads por día local de creación, ascendente, con
// totales y ganados por día. Solo aparecen días con al menos un lead; las
// fechas ilegibles no cuentan.
func DailySeries(leads []entity.Lead) []DailyPoint {
	type bucket struct{ count, won int }
	buckets := make(map[string]bucket)
	for _, l := range leads {
		created, ok := parseCreated(l.CreatedAt)
		if !ok {
			continue
		}
		day := created.Format("2006-01-02")
		b := buckets[day]
		b.count++
		if l.Stage == entity.StageWon {
			b.won++
		}
		buckets[day] = b
	}
	points := make([]DailyPoint, 0, len(buckets))
	for date, b := range buckets {
		points = append(points, DailyPoint{Date: date, Count: b.count, Won: b.won})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// ChannelBreakdown agrupa leads por origen con totales, ganados y tasa de
// conversión por canal. Orden descendente por total, tope de seis canales;
// empates se resuelven por etiqueta para que el orden sea estable.
func ChannelBreakdown(leads []entity.Lead) []ChannelCount {
	type bucket struct{ count, won int }
	buckets := make(map[string]bucket)
	for _, l := range leads {
		label, ok := entity.SourceLabels[l.Source]
		if !ok {
			label = l.Source
		}
		b := buckets[label]
		b.count++
		if l.Stage == entity.StageWon {
			b.won++
		}
		buckets[label] = b
	}
	out := make([]ChannelCount, 0, len(buckets))
	for label, b := range buckets {
		out = append(out, ChannelCount{
			Channel:        label,
			Count:          b.count,
			Won:            b.won,
			ConversionRate: conversionRate(b.won, b.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Channel < out[j].Channel
	})
	if len(out) > maxChannels {
		out = out[:maxChannels]
	}
	return out
}
