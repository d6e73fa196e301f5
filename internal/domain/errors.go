package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnknownField    = errors.New("campo desconocido")
	ErrItemOutOfRange  = errors.New("índice de ítem fuera de rango")
	ErrUnsupportedLogo = errors.New("formato de logo no soportado")
)
