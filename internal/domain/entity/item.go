package entity

import "time"

// Categorías conocidas de artículos. La columna es texto libre: el conjunto
// queda abierto a extensión sin migración.
const (
	CategoryApparel        = "Apparel"
	CategoryStationery     = "Stationery"
	CategoryPrinted        = "Printed materials"
	CategoryFunItem        = "Fun item"
	CategoryEventEquipment = "Event equipment"
)

// Item representa un artículo del catálogo (nombre único en la organización).
// Si HasVariants es true, toda operación de stock sobre el artículo exige una
// variante; si es false, ninguna puede llevarla.
type Item struct {
	ID          string
	Name        string
	Category    string
	HasVariants bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
