package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrBadRequest     = errors.New("solicitud inválida")
	ErrConflict       = errors.New("el recurso ya existe")
	ErrNotImplemented = errors.New("operación no implementada")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
)
