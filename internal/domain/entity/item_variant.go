package entity

import "time"

// ItemVariant es una sub-clasificación de un Item (una talla: XS, S, M, ...).
// (item_id, variant_name) es único.
type ItemVariant struct {
	ID          string
	ItemID      string
	VariantName string
	IsActive    bool
	CreatedAt   time.Time
}
