// Package mapper traduce entre las filas crudas del almacén y las entidades
// internas. Las filas llegan con campos opcionales en NULL y con dos
// generaciones de columna de fecha; las entidades salen siempre completas,
// con defaults definidos. Ningún otro paquete toca filas crudas.
package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// LeadRecord fila cruda de crm_leads. Los punteros reflejan columnas NULLables.
type LeadRecord struct {
	ID      string
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Source  *string
	Value   *decimal.Decimal
	// CreatedAt columna actual; CreationDate es la columna heredada de filas
	// antiguas. Al leer se prefiere CreatedAt y se cae a CreationDate.
	CreatedAt    *string
	CreationDate *string
	Stage        *string
	OwnerID      *string
	Notes        *string
	CompanyID    string
}

func strOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// LeadFromRecord normaliza una fila cruda a entidad. Nunca falla: campos
// ausentes reciben su default (source "otros", stage "nuevo", valor 0, textos
// vacíos). La fecha se conserva como texto, legible o no; si ambas columnas
// están vacías se estampa la hora actual, para que el lead no desaparezca de
// las ventanas del dashboard.
func LeadFromRecord(r LeadRecord) entity.Lead {
	value := decimal.Zero
	if r.Value != nil {
		value = *r.Value
	}
	createdAt := strOr(r.CreatedAt, strOr(r.CreationDate, ""))
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	return entity.Lead{
		ID:        r.ID,
		Name:      strOr(r.Name, ""),
		Company:   strOr(r.Company, ""),
		Email:     strOr(r.Email, ""),
		Phone:     strOr(r.Phone, ""),
		Source:    strOr(r.Source, entity.SourceOther),
		Value:     value,
		CreatedAt: createdAt,
		Stage:     strOr(r.Stage, entity.StageNew),
		OwnerID:   strOr(r.OwnerID, ""),
		Notes:     strOr(r.Notes, ""),
		CompanyID: r.CompanyID,
	}
}

// LeadToRecord serializa una entidad a fila. Escribe siempre la columna
// actual; la heredada queda en NULL para filas nuevas. Los textos opcionales
// vacíos salen en NULL, nunca como cadena vacía.
func LeadToRecord(l entity.Lead) LeadRecord {
	value := l.Value
	createdAt := l.CreatedAt
	return LeadRecord{
		ID:        l.ID,
		Name:      &l.Name,
		Company:   nilIfEmpty(l.Company),
		Email:     nilIfEmpty(l.Email),
		Phone:     nilIfEmpty(l.Phone),
		Source:    &l.Source,
		Value:     &value,
		CreatedAt: &createdAt,
		Stage:     &l.Stage,
		OwnerID:   nilIfEmpty(l.OwnerID),
		Notes:     nilIfEmpty(l.Notes),
		CompanyID: l.CompanyID,
	}
}

// LeadsFromRecords normaliza un lote preservando el orden.
func LeadsFromRecords(records []LeadRecord) []entity.Lead {
	out := make([]entity.Lead, len(records))
	for i, r := range records {
		out[i] = LeadFromRecord(r)
	}
	return out
}
