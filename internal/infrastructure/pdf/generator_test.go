package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

func fixedDate() time.Time { return time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC) }

func pngLogo(t *testing.T) *entity.Logo {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 0, G: 70, B: 127, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &entity.Logo{Data: buf.Bytes(), Format: entity.LogoFormatPNG}
}

func TestGenerators_ProducenPDF(t *testing.T) {
	ctx := context.Background()
	for _, layout := range []string{LayoutLetterhead, LayoutGrid} {
		gen, err := NewGenerator(layout)
		require.NoError(t, err, layout)

		withLogo, err := gen.GenerateInvoicePDF(ctx, twoItemInvoice(), testCompany(), pngLogo(t))
		require.NoError(t, err, layout)
		assert.True(t, bytes.HasPrefix(withLogo, []byte("%PDF")), layout)

		withoutLogo, err := gen.GenerateInvoicePDF(ctx, twoItemInvoice(), testCompany(), nil)
		require.NoError(t, err, layout)
		assert.True(t, bytes.HasPrefix(withoutLogo, []byte("%PDF")), layout)
	}
}

func TestLetterhead_FacturaPorDefectoSeRenderiza(t *testing.T) {
	gen := NewLetterheadPDFGenerator()

	out, err := gen.GenerateInvoicePDF(context.Background(), entity.NewInvoice(fixedDate()), testCompany(), nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestLetterhead_LogoCorruptoDevuelveError(t *testing.T) {
	gen := NewLetterheadPDFGenerator()
	bad := &entity.Logo{Data: []byte("no es png"), Format: entity.LogoFormatPNG}

	_, err := gen.GenerateInvoicePDF(context.Background(), twoItemInvoice(), testCompany(), bad)

	assert.Error(t, err, "el caso de uso reintenta sin logo ante este error")
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator("")
	require.NoError(t, err)
	assert.IsType(t, &LetterheadPDFGenerator{}, g)

	g, err = NewGenerator(LayoutGrid)
	require.NoError(t, err)
	assert.IsType(t, &MarotoPDFGenerator{}, g)

	_, err = NewGenerator("tabla")
	assert.Error(t, err)
}

func TestMarotoExtension(t *testing.T) {
	_, ok := marotoExtension(nil)
	assert.False(t, ok)

	_, ok = marotoExtension(&entity.Logo{Data: []byte{1}, Format: entity.LogoFormatGIF})
	assert.False(t, ok)

	ext, ok := marotoExtension(&entity.Logo{Data: []byte{1}, Format: entity.LogoFormatJPEG})
	assert.True(t, ok)
	assert.EqualValues(t, "jpg", ext)
}
