// Package pdf implementa la generación del PDF de la factura.
//
// Hay dos diseños:
//
//   - letterhead (por defecto): posiciones fijas en mm, idéntico al membrete
//     original de la herramienta. Ver LetterheadPDFGenerator.
//   - grid: la misma información en filas y columnas con Maroto v2.
//
// Layout grid de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO                         │  Empresa + contacto (der.)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Invoice  │  Invoice # / Date / Customer                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Item | Hours | Price/Hour | Total                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL INVOICE PRICE                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/invoice-pdf/internal/application/billing"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
	logo *entity.Logo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, logo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(invoice, company.CurrencySymbol)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice, company.CurrencySymbol))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo (izq) y membrete alineado a la derecha.
func headerRow(company *entity.Company, logo *entity.Logo) core.Row {
	logoCol := col.New(4)
	if ext, ok := marotoExtension(logo); ok {
		logoCol.Add(image.NewFromBytes(logo.Data, ext, props.Rect{Percent: 100}))
	}

	contact := col.New(8).Add(text.New(company.Name, props.Text{
		Style: fontstyle.Bold, Size: 16, Align: align.Right, Color: colorPrimary, Top: 2,
	}))
	top := 12.0
	for _, l := range contactLines(company) {
		contact.Add(text.New(l, props.Text{Size: 10, Align: align.Right, Color: colorGray, Top: top}))
		top += 7
	}
	return row.New(50).Add(logoCol, contact)
}

// detailsRow: título y datos de la factura.
func detailsRow(invoice *entity.Invoice) core.Row {
	return row.New(24).Add(
		col.New(4).Add(text.New("Invoice", props.Text{
			Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 3,
		})),
		col.New(8).Add(
			text.New("Invoice #: "+invoice.InvoiceNumber, props.Text{Size: 10, Top: 2}),
			text.New("Date: "+invoice.Date, props.Text{Size: 10, Top: 9}),
			text.New("Customer: "+invoice.CustomerName, props.Text{Size: 10, Top: 16}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Item", 5, align.Left),
		h("Hours", 2, align.Right),
		h("Price Per Hour", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem, en el orden del formulario.
func tableItemRows(invoice *entity.Invoice, currency string) []core.Row {
	result := make([]core.Row, 0, len(invoice.Items))
	for i, it := range invoice.Items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.Hours.String(),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				currency+entity.FormatAmount(it.PricePerHour),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				currency+entity.FormatAmount(it.LineTotal()),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total general alineado a la derecha.
func totalRow(invoice *entity.Invoice, currency string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(text.New("Total Invoice Price:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(4).Add(text.New(currency+entity.FormatAmount(invoice.Total()), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// marotoExtension Maroto solo incrusta PNG y JPEG; un GIF se omite.
func marotoExtension(logo *entity.Logo) (extension.Type, bool) {
	if logo == nil || len(logo.Data) == 0 {
		return "", false
	}
	switch logo.Format {
	case entity.LogoFormatPNG:
		return extension.Png, true
	case entity.LogoFormatJPEG:
		return extension.Jpg, true
	default:
		return "", false
	}
}
