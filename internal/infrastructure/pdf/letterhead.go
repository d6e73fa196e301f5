package pdf

import (
	"fmt"

	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

// Coordenadas en mm desde la esquina superior izquierda de la página A4.
// La posición y de un texto es su línea base.
const (
	marginX = 10.0

	logoX    = 10.0
	logoY    = 10.0
	logoSide = 50.0

	letterheadRight = 140.0
	letterheadTop   = 20.0

	titleY       = 80.0
	detailsTop   = 90.0
	itemsLabelY  = 130.0
	linePitch    = 10.0
	itemBlockGap = 5.0

	fontSizeCompany = 16.0
	fontSizeBody    = 12.0
	fontSizeTitle   = 18.0
)

// canvas operaciones de dibujo con posición absoluta que necesita el membrete.
type canvas interface {
	SetFontSize(size float64)
	Text(x, y float64, s string)
	// TextRight dibuja s de modo que termine en x.
	TextRight(x, y float64, s string)
	Image(logo *entity.Logo, x, y, w, h float64)
}

// drawLetterhead dibuja la factura completa. No pagina: y crece con cada ítem.
func drawLetterhead(c canvas, inv *entity.Invoice, company *entity.Company, logo *entity.Logo) {
	if logo != nil && len(logo.Data) > 0 {
		c.Image(logo, logoX, logoY, logoSide, logoSide)
	}

	y := letterheadTop
	c.SetFontSize(fontSizeCompany)
	c.TextRight(letterheadRight, y, company.Name)
	c.SetFontSize(fontSizeBody)
	for _, l := range contactLines(company) {
		y += linePitch
		c.TextRight(letterheadRight, y, l)
	}

	c.SetFontSize(fontSizeTitle)
	c.Text(marginX, titleY, "Invoice")
	c.SetFontSize(fontSizeBody)
	c.Text(marginX, detailsTop, "Invoice #: "+inv.InvoiceNumber)
	c.Text(marginX, detailsTop+linePitch, "Date: "+inv.Date)
	c.Text(marginX, detailsTop+2*linePitch, "Customer: "+inv.CustomerName)

	y = itemsLabelY
	c.Text(marginX, y, "Items:")
	y += linePitch
	cur := company.CurrencySymbol
	for i, it := range inv.Items {
		c.Text(marginX, y, fmt.Sprintf("%d. Item Name: %s", i+1, it.Name))
		y += linePitch
		c.Text(marginX, y, "   Hours Worked: "+it.Hours.String())
		y += linePitch
		c.Text(marginX, y, "   Price Per Hour: "+cur+entity.FormatAmount(it.PricePerHour))
		y += linePitch
		c.Text(marginX, y, "   Total: "+cur+entity.FormatAmount(it.LineTotal()))
		y += linePitch + itemBlockGap
	}
	c.Text(marginX, y, "Total Invoice Price: "+cur+entity.FormatAmount(inv.Total()))
}

func contactLines(company *entity.Company) []string {
	return []string{
		"Location: " + company.Location,
		"Website: " + company.Website,
		"Email: " + company.Email,
		"Mobile: " + company.Mobile,
	}
}
