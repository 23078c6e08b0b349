// Package pdf genera el reporte PDF de leads con maroto.
package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/crm-api/internal/application/export"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// LeadsReport implementa export.PDFRenderer.
type LeadsReport struct{}

// NewLeadsReport crea el generador de reportes.
func NewLeadsReport() export.PDFRenderer {
	return &LeadsReport{}
}

var _ export.PDFRenderer = (*LeadsReport)(nil)

func headerRow() core.Row {
	return row.New(8).Add(
		col.New(3).Add(text.New("Nombre", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(3).Add(text.New("Empresa", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(2).Add(text.New("Origen", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(2).Add(text.New("Etapa", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(2).Add(text.New("Valor", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
	)
}

func leadRow(l entity.Lead) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(l.Name, props.Text{Size: 8})),
		col.New(3).Add(text.New(l.Company, props.Text{Size: 8})),
		col.New(2).Add(text.New(entity.SourceLabels[l.Source], props.Text{Size: 8})),
		col.New(2).Add(text.New(entity.StageLabels[l.Stage], props.Text{Size: 8})),
		col.New(2).Add(text.New(l.Value.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}

// RenderLeads arma el reporte: encabezado con empresa y fecha, tabla de leads
// y total al pie.
func (g *LeadsReport) RenderLeads(leads []entity.Lead, companyName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()
	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(text.New("Reporte de Leads - "+companyName, props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Center,
			})),
		),
		row.New(8).Add(
			col.New(12).Add(text.New("Generado el "+time.Now().Format("2006-01-02"), props.Text{
				Size:  9,
				Align: align.Center,
			})),
		),
		headerRow(),
	)

	for _, l := range leads {
		m.AddRows(leadRow(l))
	}

	m.AddRows(row.New(10).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Total: %d leads", len(leads)), props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: align.Right,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}
