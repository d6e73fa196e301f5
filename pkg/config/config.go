package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Draft   DraftConfig
	Logo    LogoConfig
	PDF     PDFConfig
	Company CompanyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DraftConfig borradores en memoria.
type DraftConfig struct {
	TTL time.Duration // inactividad tras la cual se descarta un borrador; 0 = nunca
}

// LogoConfig origen del logo: URL http(s) o ruta local. Vacío = sin logo.
type LogoConfig struct {
	Source  string
	Timeout time.Duration
}

// PDFConfig diseño del documento: letterhead | grid.
type PDFConfig struct {
	Layout string
}

// CompanyConfig membrete impreso en la factura.
type CompanyConfig struct {
	Name           string
	Location       string
	Website        string
	Email          string
	Mobile         string
	CurrencySymbol string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, LOGO_SOURCE, COMPANY_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "invoice-pdf"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Draft: DraftConfig{
			TTL: time.Duration(getInt(v, "DRAFT_TTL_MINUTES", 120)) * time.Minute,
		},
		Logo: LogoConfig{
			Source:  getString(v, "LOGO_SOURCE", "./web/static/logo.png"),
			Timeout: time.Duration(getInt(v, "LOGO_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		PDF: PDFConfig{
			Layout: getString(v, "PDF_LAYOUT", "letterhead"),
		},
		Company: CompanyConfig{
			Name:           getString(v, "COMPANY_NAME", "Mycall Dev Tech"),
			Location:       getString(v, "COMPANY_LOCATION", "London"),
			Website:        getString(v, "COMPANY_WEBSITE", "www.mycalldevtech.com"),
			Email:          getString(v, "COMPANY_EMAIL", "devmycall@gmail.com"),
			Mobile:         getString(v, "COMPANY_MOBILE", "07754987116"),
			CurrencySymbol: getString(v, "COMPANY_CURRENCY_SYMBOL", "£"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.Draft.TTL < 0 {
		return nil, fmt.Errorf("config: DRAFT_TTL_MINUTES no puede ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
