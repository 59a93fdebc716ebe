package entity

import "time"

// LowStockAlert registra una ocurrencia de stock bajo para una partición
// (item, ubicación, variante). Se resuelve (ResolvedAt) cuando una entrada
// vuelve a subir el stock por encima del umbral.
type LowStockAlert struct {
	ID            string
	LocationID    string
	ItemID        string
	ItemVariantID *string
	Threshold     int64
	TriggeredAt   time.Time
	ResolvedAt    *time.Time
}
