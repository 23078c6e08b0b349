// Package export genera los archivos descargables de leads (CSV y PDF).
package export

import (
	"strings"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// PDFRenderer genera el reporte PDF de leads. Lo implementa la capa de
// infraestructura.
type PDFRenderer interface {
	RenderLeads(leads []entity.Lead, companyName string) ([]byte, error)
}

// csvHeader encabezado del CSV. Las columnas de texto van entrecomilladas;
// el valor numérico sale sin comillas.
const csvHeader = `"Nombre","Empresa","Email","Teléfono","Origen","Etapa",Valor,"Propietario","Fecha de Creación"`

// quote envuelve un campo de texto en comillas dobles, duplicando las
// internas.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// csvDate presenta la fecha de creación como día legible en hora local; si el
// texto no es una fecha, sale tal cual.
func csvDate(raw string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Local().Format("02/01/2006")
		}
	}
	return raw
}

func label(m map[string]string, key string) string {
	if l, ok := m[key]; ok {
		return l
	}
	return key
}

// LeadsCSV serializa los leads a CSV con encabezado, una fila por lead, en el
// orden recibido. ownerNames resuelve el nombre del dueño por id; un dueño
// desconocido sale vacío. Las filas se separan con \n y no hay \n final.
func LeadsCSV(leads []entity.Lead, ownerNames map[string]string) []byte {
	lines := make([]string, 0, len(leads)+1)
	lines = append(lines, csvHeader)
	for _, l := range leads {
		fields := []string{
			quote(l.Name),
			quote(l.Company),
			quote(l.Email),
			quote(l.Phone),
			quote(label(entity.SourceLabels, l.Source)),
			quote(label(entity.StageLabels, l.Stage)),
			l.Value.String(),
			quote(ownerNames[l.OwnerID]),
			quote(csvDate(l.CreatedAt)),
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

// CSVFilename nombre de descarga con la fecha del día.
func CSVFilename(now time.Time) string {
	return "leads_" + now.Format("2006-01-02") + ".csv"
}
