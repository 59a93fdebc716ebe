package entity

import "time"

// Event representa un evento de la organización. Solo sirve para atribuir
// transacciones y reportar; no participa en el cálculo de stock.
// LocationID es una referencia por defecto, no se valida contra la transacción.
type Event struct {
	ID         string
	Name       string
	EventType  string
	EventDate  time.Time
	LocationID *string
	Notes      string
	IsActive   bool
	CreatedAt  time.Time
}
