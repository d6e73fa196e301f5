package web_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-pdf/web"
)

func TestStatic_ContieneFormulario(t *testing.T) {
	for _, name := range []string{"index.html", "app.js", "app.css", "logo.png"} {
		_, err := fs.Stat(web.Static(), name)
		assert.NoError(t, err, name)
	}
}

// La descarga no debe adelantarse a una edición que aún no llegó al servidor.
func TestAppJS_DescargaEsperaEdicionesPendientes(t *testing.T) {
	raw, err := fs.ReadFile(web.Static(), "app.js")
	require.NoError(t, err)
	js := string(raw)

	_, download, found := strings.Cut(js, `getElementById("download")`)
	require.True(t, found)
	download, _, _ = strings.Cut(download, "});\n")
	assert.Contains(t, download, "pending.then(")
	assert.Contains(t, download, "/pdf")

	// Toda escritura pasa por la cadena.
	assert.NotContains(t, js, `call("PATCH"`)
	assert.NotContains(t, js, `call("PUT"`)
	assert.Contains(t, js, `mutate("PATCH"`)
	assert.Contains(t, js, `mutate("PUT"`)
}
