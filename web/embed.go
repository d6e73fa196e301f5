// Package web contiene el formulario HTML servido por la API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static devuelve el contenido de web/static con la raíz en ese directorio.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
