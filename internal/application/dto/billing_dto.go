package dto

// SetFieldRequest body para PUT /api/drafts/:id/fields/:field.
type SetFieldRequest struct {
	Value string `json:"value"`
}

// UpdateItemRequest body para PATCH /api/drafts/:id/items/:index.
// Field: name | hours | pricePerHour. Value llega como texto, igual que en el formulario.
type UpdateItemRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// InvoiceResponse borrador con totales derivados.
// Los montos viajan como texto con 2 decimales; Hours conserva la precisión ingresada.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CustomerName  string                `json:"customerName"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Date          string                `json:"date"`
	Items         []InvoiceItemResponse `json:"items"`
	Total         string                `json:"total"`
}

// InvoiceItemResponse línea del borrador.
type InvoiceItemResponse struct {
	Name         string `json:"name"`
	Hours        string `json:"hours"`
	PricePerHour string `json:"pricePerHour"`
	Total        string `json:"total"`
}

// InvoiceDocument formato JSON de entrada del renderizador por línea de comandos.
// Los números se aceptan como número o texto.
type InvoiceDocument struct {
	CustomerName  string                `json:"customerName"`
	InvoiceNumber *string               `json:"invoiceNumber,omitempty"`
	Date          *string               `json:"date,omitempty"`
	Items         []InvoiceDocumentItem `json:"items"`
}

// InvoiceDocumentItem línea del documento de entrada.
type InvoiceDocumentItem struct {
	Name         string     `json:"name"`
	Hours        FlexNumber `json:"hours"`
	PricePerHour FlexNumber `json:"pricePerHour"`
}

// FlexNumber número que puede venir como 12, 12.5 o "12.5" en JSON.
type FlexNumber string

// UnmarshalJSON acepta literales numéricos y strings; null queda vacío.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*n = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*n = FlexNumber(s)
	return nil
}

// CompanyResponse membrete para encabezar el formulario.
type CompanyResponse struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	Website        string `json:"website"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	CurrencySymbol string `json:"currencySymbol"`
}
