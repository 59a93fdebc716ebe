package entity

import "time"

// Tipos de transacción del libro de movimientos.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// Transaction es un asiento del libro de movimientos: inmutable una vez creado,
// nunca se actualiza ni se borra. El stock disponible no se almacena: siempre se
// deriva como sum(IN) - sum(OUT) por (item, ubicación, variante), de modo que el
// libro es la única fuente de verdad y no puede haber deriva contra un contador.
type Transaction struct {
	ID              string
	TransactionType string
	ItemID          string
	ItemVariantID   *string // nil ssi el artículo no maneja variantes
	LocationID      string
	EventID         *string
	Quantity        int64 // estrictamente positivo; el signo lo da el tipo
	Reason          string
	CreatedBy       string
	CreatedAt       time.Time
}

// StockKey identifica la partición de stock de una transacción. Una clave con
// VariantID nil es una partición propia: no agrega sobre las variantes.
type StockKey struct {
	ItemID     string
	LocationID string
	VariantID  *string
}

// SimpleKey construye la clave de un artículo sin variantes.
func SimpleKey(itemID, locationID string) StockKey {
	return StockKey{ItemID: itemID, LocationID: locationID}
}

// VariantKey construye la clave de un artículo con variante.
func VariantKey(itemID, locationID, variantID string) StockKey {
	return StockKey{ItemID: itemID, LocationID: locationID, VariantID: &variantID}
}
