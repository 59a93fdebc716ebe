package dto

import "time"

// StockMovementRequest body para POST /api/stock/in y /api/stock/out.
// Threshold solo aplica a salidas: sobreescribe el umbral de alerta configurado.
type StockMovementRequest struct {
	ItemID     string  `json:"item_id"`
	VariantID  *string `json:"variant_id,omitempty"`
	LocationID string  `json:"location_id"`
	EventID    *string `json:"event_id,omitempty"`
	Quantity   int64   `json:"quantity"`
	Reason     string  `json:"reason"`
	CreatedBy  string  `json:"created_by"`
	Threshold  *int64  `json:"threshold,omitempty"`
}

// TransactionResponse representación HTTP de un asiento del libro.
type TransactionResponse struct {
	ID              string    `json:"id"`
	TransactionType string    `json:"transaction_type"`
	ItemID          string    `json:"item_id"`
	VariantID       *string   `json:"variant_id,omitempty"`
	LocationID      string    `json:"location_id"`
	EventID         *string   `json:"event_id,omitempty"`
	Quantity        int64     `json:"quantity"`
	Reason          string    `json:"reason"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// StockMovementResponse respuesta de un movimiento registrado. Warning se
// llena cuando la notificación posterior al commit falló con política strict:
// el asiento quedó escrito de todos modos.
type StockMovementResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	OnHand      int64               `json:"on_hand"`
	Warning     string              `json:"warning,omitempty"`
}

// CurrentStockResponse respuesta de GET /api/stock.
type CurrentStockResponse struct {
	ItemID     string  `json:"item_id"`
	VariantID  *string `json:"variant_id,omitempty"`
	LocationID string  `json:"location_id"`
	OnHand     int64   `json:"on_hand"`
}

// StockLevelDTO una fila del reporte de niveles de stock.
type StockLevelDTO struct {
	ItemID      string  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	VariantID   *string `json:"variant_id,omitempty"`
	VariantName *string `json:"variant_name,omitempty"`
	LocationID  string  `json:"location_id"`
	Location    string  `json:"location"`
	OnHand      int64   `json:"on_hand"`
}

// EventUsageDTO una fila del reporte de uso por evento.
type EventUsageDTO struct {
	ItemID      string  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	VariantID   *string `json:"variant_id,omitempty"`
	VariantName *string `json:"variant_name,omitempty"`
	TotalOut    int64   `json:"total_out"`
}

// TransactionListResponse listado paginado de asientos.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// LowStockAlertResponse representación HTTP de una alerta de stock bajo.
type LowStockAlertResponse struct {
	ID          string     `json:"id"`
	ItemID      string     `json:"item_id"`
	VariantID   *string    `json:"variant_id,omitempty"`
	LocationID  string     `json:"location_id"`
	Threshold   int64      `json:"threshold"`
	TriggeredAt time.Time  `json:"triggered_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}
