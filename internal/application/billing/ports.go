package billing

import (
	"context"

	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

// InvoicePDFGenerator genera el PDF de una factura a partir de un snapshot.
// logo puede ser nil: el generador omite la imagen sin dejar espacio reservado.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		logo *entity.Logo,
	) ([]byte, error)
}

// LogoProvider expone el logo cargado en segundo plano.
// Get devuelve nil mientras no haya terminado de cargar o si la carga falló.
type LogoProvider interface {
	Get() *entity.Logo
}
