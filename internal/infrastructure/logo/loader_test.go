package logo_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-pdf/internal/domain"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf/internal/infrastructure/logo"
	"github.com/jhoicas/invoice-pdf/pkg/logger"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("la carga del logo no terminó")
	}
}

func TestLoader_DesdeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0o644))
	cell := &logo.Cell{}

	done := logo.NewLoader(path, time.Second, cell, logger.Nop()).Start(context.Background())
	waitDone(t, done)

	got := cell.Get()
	require.NotNil(t, got)
	assert.Equal(t, entity.LogoFormatPNG, got.Format)
	assert.Equal(t, "image/png", got.ContentType())
}

func TestLoader_DesdeHTTP(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logo.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	l := logo.NewLoader(srv.URL+"/logo.png", time.Second, &logo.Cell{}, logger.Nop())
	got, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, got.Data)

	_, err = logo.NewLoader(srv.URL+"/otro.png", time.Second, &logo.Cell{}, logger.Nop()).Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_FalloDejaCeldaVacia(t *testing.T) {
	cell := &logo.Cell{}

	done := logo.NewLoader(filepath.Join(t.TempDir(), "no-existe.png"), time.Second, cell, logger.Nop()).
		Start(context.Background())
	waitDone(t, done)

	assert.Nil(t, cell.Get())
}

func TestLoader_FuenteVacia(t *testing.T) {
	cell := &logo.Cell{}
	waitDone(t, logo.NewLoader("  ", time.Second, cell, logger.Nop()).Start(context.Background()))
	assert.Nil(t, cell.Get())
}

func TestDecode(t *testing.T) {
	_, err := logo.Decode([]byte("texto plano"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedLogo)

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black, color.White}), nil))
	got, err := logo.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, entity.LogoFormatGIF, got.Format)
}
