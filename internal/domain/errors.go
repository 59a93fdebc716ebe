package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero mayor que 0")
	ErrMissingReason     = errors.New("el motivo es requerido")
	ErrMissingActor      = errors.New("created_by es requerido")
	ErrItemNotFound      = errors.New("artículo no encontrado o inactivo")
	ErrLocationNotFound  = errors.New("ubicación no encontrada o inactiva")
	ErrVariantRequired   = errors.New("este artículo requiere variante (talla)")
	ErrVariantMismatch   = errors.New("variante no encontrada, inactiva o no pertenece al artículo")
	ErrUnexpectedVariant = errors.New("este artículo no admite variante")
	ErrNotificationFailed = errors.New("fallo al enviar la notificación")
)

// InsufficientStockError indica que una salida excede el stock disponible.
// Incluye el stock actual para que la capa de presentación lo muestre al usuario.
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Current, e.Requested)
}

// IsInsufficientStock reporta si err es un InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
