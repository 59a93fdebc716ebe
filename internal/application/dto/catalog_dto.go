package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	HasVariants bool   `json:"has_variants"`
}

// UpdateItemRequest body para PUT /api/items/:id (campos opcionales).
type UpdateItemRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ItemResponse representación HTTP de un artículo.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	HasVariants bool      `json:"has_variants"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateVariantRequest body para POST /api/items/:id/variants.
type CreateVariantRequest struct {
	VariantName string `json:"variant_name"`
}

// VariantResponse representación HTTP de una variante.
type VariantResponse struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	VariantName string    `json:"variant_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateLocationRequest body para PUT /api/locations/:id.
type UpdateLocationRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// LocationResponse representación HTTP de una ubicación.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// LocationListResponse listado paginado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateEventRequest body para POST /api/events.
type CreateEventRequest struct {
	Name       string  `json:"name"`
	EventType  string  `json:"event_type"`
	EventDate  string  `json:"event_date"` // YYYY-MM-DD
	LocationID *string `json:"location_id,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// UpdateEventRequest body para PUT /api/events/:id.
type UpdateEventRequest struct {
	Name       *string `json:"name,omitempty"`
	EventType  *string `json:"event_type,omitempty"`
	EventDate  *string `json:"event_date,omitempty"`
	LocationID *string `json:"location_id,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// EventResponse representación HTTP de un evento.
type EventResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EventType  string    `json:"event_type"`
	EventDate  string    `json:"event_date"`
	LocationID *string   `json:"location_id,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventListResponse listado paginado de eventos.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
