package billing

import (
	"fmt"
	"time"

	"github.com/jhoicas/invoice-pdf/internal/application/dto"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

// BuildInvoice arma una factura desde un documento JSON aplicando las mismas
// operaciones que el formulario, así los números inválidos quedan en cero igual que allí.
// Un documento sin ítems conserva la línea vacía por defecto.
func BuildInvoice(doc dto.InvoiceDocument, now time.Time) (*entity.Invoice, error) {
	inv := entity.NewInvoice(now)
	if err := inv.SetField(entity.FieldCustomerName, doc.CustomerName); err != nil {
		return nil, err
	}
	if doc.InvoiceNumber != nil {
		if err := inv.SetField(entity.FieldInvoiceNumber, *doc.InvoiceNumber); err != nil {
			return nil, err
		}
	}
	if doc.Date != nil {
		if err := inv.SetField(entity.FieldDate, *doc.Date); err != nil {
			return nil, err
		}
	}

	for i, it := range doc.Items {
		if i > 0 {
			inv.AddItem()
		}
		fields := [][2]string{
			{entity.ItemFieldName, it.Name},
			{entity.ItemFieldHours, string(it.Hours)},
			{entity.ItemFieldPricePerHour, string(it.PricePerHour)},
		}
		for _, f := range fields {
			if err := inv.UpdateItem(i, f[0], f[1]); err != nil {
				return nil, fmt.Errorf("ítem %d: %w", i+1, err)
			}
		}
	}
	return inv, nil
}
