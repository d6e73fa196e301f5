package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-pdf/internal/domain"
)

// Valores por defecto de una factura recién abierta.
const (
	DefaultInvoiceNumber = "INV-001"
	DateLayout           = "2006-01-02"
)

// Campos de cabecera editables con SetField.
const (
	FieldCustomerName  = "customerName"
	FieldInvoiceNumber = "invoiceNumber"
	FieldDate          = "date"
)

// Campos de una línea editables con UpdateItem.
const (
	ItemFieldName         = "name"
	ItemFieldHours        = "hours"
	ItemFieldPricePerHour = "pricePerHour"
)

// Invoice representa la factura en edición. Vive solo en memoria.
type Invoice struct {
	CustomerName  string
	InvoiceNumber string
	Date          string // YYYY-MM-DD, texto libre tras la edición
	Items         []LineItem
}

// LineItem representa una línea de trabajo facturable.
type LineItem struct {
	Name         string
	Hours        decimal.Decimal
	PricePerHour decimal.Decimal
}

// NewInvoice abre una factura con número INV-001, la fecha de now (UTC) y una línea vacía.
func NewInvoice(now time.Time) *Invoice {
	return &Invoice{
		InvoiceNumber: DefaultInvoiceNumber,
		Date:          now.UTC().Format(DateLayout),
		Items:         []LineItem{{}},
	}
}

// LineTotal horas * precio por hora.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Hours.Mul(li.PricePerHour)
}

// SetField reemplaza un campo de cabecera. No valida el contenido.
func (inv *Invoice) SetField(field, value string) error {
	switch field {
	case FieldCustomerName:
		inv.CustomerName = value
	case FieldInvoiceNumber:
		inv.InvoiceNumber = value
	case FieldDate:
		inv.Date = value
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	return nil
}

// AddItem agrega una línea vacía al final y devuelve la nueva cantidad de líneas.
func (inv *Invoice) AddItem() int {
	inv.Items = append(inv.Items, LineItem{})
	return len(inv.Items)
}

// UpdateItem reemplaza un campo de la línea index.
// Los valores numéricos que no se pueden interpretar quedan en cero.
func (inv *Invoice) UpdateItem(index int, field, value string) error {
	if index < 0 || index >= len(inv.Items) {
		return fmt.Errorf("%w: %d (hay %d)", domain.ErrItemOutOfRange, index, len(inv.Items))
	}
	item := &inv.Items[index]
	switch field {
	case ItemFieldName:
		item.Name = value
	case ItemFieldHours:
		item.Hours = ParseAmount(value)
	case ItemFieldPricePerHour:
		item.PricePerHour = ParseAmount(value)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	return nil
}

// Total suma las líneas. Se recalcula en cada llamada; nunca se almacena.
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range inv.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Clone devuelve una copia profunda (snapshot para render).
func (inv *Invoice) Clone() *Invoice {
	out := *inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return &out
}

// Límites de una entrada numérica. Fuera de ellos la entrada se trata como inválida:
// exponentes enormes hacen que Mul entre en pánico o que String reserve gigas.
const (
	maxAmountInputLen = 64
	maxAmountExponent = 64
	maxAmountDigits   = 15 // parte entera: hasta 999 999 999 999 999
)

var maxAmount = decimal.New(1, maxAmountDigits)

// ParseAmount interpreta una entrada numérica del formulario.
// Entrada vacía, inválida o fuera de rango → cero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAmountInputLen {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero
	}
	return d
}

// FormatAmount formatea con 2 decimales, redondeando la mitad lejos de cero.
// Ej: 33.333 → "33.33", 2.005 → "2.01".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
