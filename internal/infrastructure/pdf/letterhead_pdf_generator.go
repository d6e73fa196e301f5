package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/encoding/charmap"

	appbilling "github.com/jhoicas/invoice-pdf/internal/application/billing"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*LetterheadPDFGenerator)(nil)

const logoImageName = "logo"

// LetterheadPDFGenerator reproduce el membrete clásico con posiciones fijas (gofpdf, A4, mm).
type LetterheadPDFGenerator struct{}

// NewLetterheadPDFGenerator construye el generador.
func NewLetterheadPDFGenerator() *LetterheadPDFGenerator { return &LetterheadPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *LetterheadPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
	logo *entity.Logo,
) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Invoice "+invoice.InvoiceNumber, true)
	doc.SetAuthor(company.Name, true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", fontSizeBody)
	doc.AddPage()

	drawLetterhead(&fpdfCanvas{doc: doc}, invoice, company, logo)

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf: dibujar membrete: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return buf.Bytes(), nil
}

// fpdfCanvas adapta gofpdf a canvas. Las fuentes estándar usan Windows-1252.
type fpdfCanvas struct {
	doc *gofpdf.Fpdf
}

func (c *fpdfCanvas) SetFontSize(size float64) { c.doc.SetFontSize(size) }

func (c *fpdfCanvas) Text(x, y float64, s string) {
	c.doc.Text(x, y, toWin1252(s))
}

func (c *fpdfCanvas) TextRight(x, y float64, s string) {
	enc := toWin1252(s)
	c.doc.Text(x-c.doc.GetStringWidth(enc), y, enc)
}

func (c *fpdfCanvas) Image(logo *entity.Logo, x, y, w, h float64) {
	opts := gofpdf.ImageOptions{ImageType: fpdfImageType(logo.Format)}
	c.doc.RegisterImageOptionsReader(logoImageName, opts, bytes.NewReader(logo.Data))
	c.doc.ImageOptions(logoImageName, x, y, w, h, false, opts, 0, "")
}

func fpdfImageType(format string) string {
	switch format {
	case entity.LogoFormatJPEG:
		return "JPG"
	case entity.LogoFormatGIF:
		return "GIF"
	default:
		return "PNG"
	}
}

// toWin1252 codifica s para las fuentes estándar; runas sin equivalente → '?'.
func toWin1252(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
