package stock

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de asientos atado a esa tx. Garantiza atomicidad para el libro:
// todo lo que escribe fn se confirma junto o se revierte junto.
type TxRunner interface {
	Run(ctx context.Context, fn func(txRepo repository.TransactionRepository) error) error
}

// Notifier es el sumidero de notificaciones. Cada método resuelve su propia
// lista de destinatarios (configuración); falla si la lista está vacía o
// faltan credenciales.
type Notifier interface {
	SendStockOut(subject, body string) error
	SendLowStock(subject, body string) error
}
