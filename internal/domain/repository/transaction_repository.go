package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// TransactionFilter filtros para listar movimientos del libro.
type TransactionFilter struct {
	ItemID     string
	LocationID string
	Type       string // "", IN u OUT
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// StockLevelResult stock disponible de una partición (item, variante, ubicación),
// derivado por agregación del libro.
type StockLevelResult struct {
	ItemID      string
	ItemName    string
	VariantID   *string
	VariantName *string
	LocationID  string
	Location    string
	OnHand      int64
}

// EventUsageResult total de salidas atribuidas a un evento por item/variante.
type EventUsageResult struct {
	ItemID      string
	ItemName    string
	VariantID   *string
	VariantName *string
	TotalOut    int64
}

// TransactionRepository define el puerto del libro de movimientos (append-only:
// sin Update ni Delete). CurrentStock y LockStockKey operan sobre la partición
// exacta de la clave: variante nil no agrega sobre las variantes.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// CurrentStock devuelve sum(IN) - sum(OUT) de la partición; 0 si no hay movimientos.
	CurrentStock(key entity.StockKey) (int64, error)
	// LockStockKey serializa la ventana leer-comparar-escribir de las salidas
	// para una partición. Solo tiene efecto dentro de una transacción de BD.
	LockStockKey(key entity.StockKey) error
	List(filter TransactionFilter) ([]*entity.Transaction, error)
	StockLevels(locationID string) ([]StockLevelResult, error)
	UsageByEvent(eventID string) ([]EventUsageResult, error)
}
