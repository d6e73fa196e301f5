package pdf

import (
	"fmt"

	appbilling "github.com/jhoicas/invoice-pdf/internal/application/billing"
)

// Diseños disponibles (PDF_LAYOUT).
const (
	LayoutLetterhead = "letterhead"
	LayoutGrid       = "grid"
)

// NewGenerator devuelve el generador del diseño pedido. Vacío → letterhead.
func NewGenerator(layout string) (appbilling.InvoicePDFGenerator, error) {
	switch layout {
	case "", LayoutLetterhead:
		return NewLetterheadPDFGenerator(), nil
	case LayoutGrid:
		return NewMarotoPDFGenerator(), nil
	default:
		return nil, fmt.Errorf("pdf: diseño desconocido %q (letterhead|grid)", layout)
	}
}
