package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInsufficientBalance = errors.New("el pago excede el saldo pendiente del proveedor")
	ErrExternalService     = errors.New("servicio externo no disponible")
)
