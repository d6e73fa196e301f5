// Package logo carga el logo de la empresa en segundo plano.
//
// La carga no se coordina con las ediciones ni con la descarga del PDF: el
// generador lee la celda en el instante de la descarga y, si aún está vacía,
// la factura sale sin logo. Un fallo de carga solo se registra en el log.
package logo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jhoicas/invoice-pdf/internal/domain"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf/pkg/logger"
)

// maxLogoBytes tope de lectura del logo.
const maxLogoBytes = 5 * 1024 * 1024

// Cell valor opcional del logo: nil hasta que la carga termina bien.
type Cell struct {
	v atomic.Pointer[entity.Logo]
}

// Get devuelve el logo o nil si no está disponible.
func (c *Cell) Get() *entity.Logo { return c.v.Load() }

// Set publica el logo.
func (c *Cell) Set(l *entity.Logo) { c.v.Store(l) }

// Loader lee el logo desde una URL http(s) o una ruta local.
type Loader struct {
	source     string
	cell       *Cell
	log        *logger.Logger
	httpClient *http.Client
}

// NewLoader construye el cargador. source vacío desactiva el logo.
func NewLoader(source string, timeout time.Duration, cell *Cell, log *logger.Logger) *Loader {
	return &Loader{
		source: strings.TrimSpace(source),
		cell:   cell,
		log:    log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Start lanza la carga en una goroutine y retorna de inmediato.
// El canal se cierra al terminar (con o sin logo); nadie está obligado a esperarlo.
func (l *Loader) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if l.source == "" {
			l.log.Info().Msg("logo desactivado (LOGO_SOURCE vacío)")
			return
		}
		logo, err := l.Load(ctx)
		if err != nil {
			l.log.Warn().Err(err).Str("source", l.source).Msg("logo no disponible; las facturas saldrán sin logo")
			return
		}
		l.cell.Set(logo)
		l.log.Info().
			Str("source", l.source).
			Str("format", logo.Format).
			Int("bytes", len(logo.Data)).
			Msg("logo cargado")
	}()
	return done
}

// Load lee y valida el logo sin publicarlo.
func (l *Loader) Load(ctx context.Context) (*entity.Logo, error) {
	data, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
		if err != nil {
			return nil, fmt.Errorf("logo: crear request: %w", err)
		}
		resp, err := l.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("logo: descargar: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("logo: descargar: HTTP %d", resp.StatusCode)
		}
		return readLimited(resp.Body)
	}

	f, err := os.Open(l.source)
	if err != nil {
		return nil, fmt.Errorf("logo: abrir archivo: %w", err)
	}
	defer f.Close()
	return readLimited(f)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxLogoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("logo: leer: %w", err)
	}
	if len(data) > maxLogoBytes {
		return nil, fmt.Errorf("logo: supera %d bytes", maxLogoBytes)
	}
	return data, nil
}

// Decode verifica que data sea una imagen PNG, JPEG o GIF y detecta el formato.
func Decode(data []byte) (*entity.Logo, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedLogo, err)
	}
	switch format {
	case entity.LogoFormatPNG, entity.LogoFormatJPEG, entity.LogoFormatGIF:
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLogo, format)
	}
	return &entity.Logo{Data: data, Format: format}, nil
}
