package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrLoginRequired      = errors.New("se requiere iniciar sesión")
	ErrUnknownSource      = errors.New("fuente de catálogo desconocida")

	// ErrMalformedPayload indica que al payload crudo del proveedor le falta el
	// campo de identidad obligatorio. El producto se marca como no disponible;
	// nunca debe tumbar la petición.
	ErrMalformedPayload = errors.New("payload del proveedor malformado")

	// ErrNoSelection: el usuario no ha seleccionado cantidad en ninguna variante.
	ErrNoSelection = errors.New("ninguna variante seleccionada")

	// ErrUpstreamUnavailable: fallo de red/transporte contra un colaborador.
	// Las excepciones crudas de transporte nunca llegan a la capa de presentación.
	ErrUpstreamUnavailable = errors.New("servicio del proveedor no disponible")

	// ErrBatchFailed: ninguna línea del carrito fue aceptada por la pasarela.
	ErrBatchFailed = errors.New("ninguna línea del carrito pudo enviarse")
)

// BelowMinimumOrderError: la cantidad total seleccionada no alcanza el mínimo
// de compra del producto. Required lleva el mínimo exigido para el mensaje.
type BelowMinimumOrderError struct {
	Required int
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("la cantidad total no alcanza el mínimo de compra (%d)", e.Required)
}
