package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-pdf/internal/application/billing"
	"github.com/jhoicas/invoice-pdf/internal/application/dto"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

// InvoiceHandler entrega el PDF y el logo.
type InvoiceHandler struct {
	pdf   *billing.PDFUseCase
	logos billing.LogoProvider
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(pdf *billing.PDFUseCase, logos billing.LogoProvider) *InvoiceHandler {
	return &InvoiceHandler{pdf: pdf, logos: logos}
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Description  Renderiza el borrador tal como está ahora. Si el logo aún no cargó, el PDF sale sin logo.
// @Tags         drafts
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

// Logo godoc
// @Summary      Logo de la empresa
// @Tags         assets
// @Produce      png
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /logo.png [get]
func (h *InvoiceHandler) Logo(c *fiber.Ctx) error {
	var logo *entity.Logo
	if h.logos != nil {
		logo = h.logos.Get()
	}
	if logo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "logo no disponible"})
	}
	c.Set(fiber.HeaderContentType, logo.ContentType())
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(logo.Data)
}

// Company godoc
// @Summary      Membrete de la empresa
// @Tags         assets
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Router       /api/company [get]
func (h *InvoiceHandler) Company(c *fiber.Ctx) error {
	return c.JSON(h.pdf.Company())
}
