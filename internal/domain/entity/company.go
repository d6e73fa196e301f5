package entity

// Company bloque de membrete que se imprime en cada factura.
type Company struct {
	Name           string
	Location       string
	Website        string
	Email          string
	Mobile         string
	CurrencySymbol string
}

// Formatos de imagen aceptados para el logo.
const (
	LogoFormatPNG  = "png"
	LogoFormatJPEG = "jpeg"
	LogoFormatGIF  = "gif"
)

// Logo imagen ya codificada, lista para incrustar en el PDF o servir al navegador.
type Logo struct {
	Data   []byte
	Format string
}

// ContentType tipo MIME para servir el logo por HTTP.
func (l *Logo) ContentType() string {
	switch l.Format {
	case LogoFormatJPEG:
		return "image/jpeg"
	case LogoFormatGIF:
		return "image/gif"
	default:
		return "image/png"
	}
}
