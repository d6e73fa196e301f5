package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-pdf/internal/application/dto"
	"github.com/jhoicas/invoice-pdf/internal/domain"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf/internal/domain/repository"
)

// InvoiceFilename nombre fijo del archivo descargado.
const InvoiceFilename = "invoice.pdf"

// PDFUseCase genera el PDF del borrador tal como está en el momento de la descarga.
type PDFUseCase struct {
	repo      repository.DraftRepository
	generator InvoicePDFGenerator
	logos     LogoProvider
	company   entity.Company
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	repo repository.DraftRepository,
	generator InvoicePDFGenerator,
	logos LogoProvider,
	company entity.Company,
) *PDFUseCase {
	return &PDFUseCase{
		repo:      repo,
		generator: generator,
		logos:     logos,
		company:   company,
	}
}

// DownloadInvoicePDF toma el snapshot del borrador y lo renderiza.
// El logo se lee en este instante: si todavía no cargó, el PDF sale sin logo.
//
// Retorna:
//   - (pdfBytes, "invoice.pdf", nil)  si todo sale bien.
//   - domain.ErrNotFound              si el borrador no existe o expiró.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, draftID string) (pdfBytes []byte, filename string, err error) {
	if draftID == "" {
		return nil, "", domain.ErrInvalidInput
	}
	inv, err := uc.repo.GetByID(draftID)
	if err != nil {
		return nil, "", err
	}

	var logo *entity.Logo
	if uc.logos != nil {
		logo = uc.logos.Get()
	}

	pdfBytes, err = RenderDocument(ctx, uc.generator, inv, &uc.company, logo)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, InvoiceFilename, nil
}

// RenderDocument genera el PDF; si falla con logo, reintenta sin él.
// Un logo defectuoso nunca impide descargar la factura.
func RenderDocument(
	ctx context.Context,
	generator InvoicePDFGenerator,
	invoice *entity.Invoice,
	company *entity.Company,
	logo *entity.Logo,
) ([]byte, error) {
	pdfBytes, err := generator.GenerateInvoicePDF(ctx, invoice, company, logo)
	if err != nil && logo != nil {
		pdfBytes, err = generator.GenerateInvoicePDF(ctx, invoice, company, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, nil
}

// Company devuelve el membrete configurado.
func (uc *PDFUseCase) Company() dto.CompanyResponse {
	return dto.CompanyResponse{
		Name:           uc.company.Name,
		Location:       uc.company.Location,
		Website:        uc.company.Website,
		Email:          uc.company.Email,
		Mobile:         uc.company.Mobile,
		CurrencySymbol: uc.company.CurrencySymbol,
	}
}
