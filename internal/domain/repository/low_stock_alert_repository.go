package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// LowStockAlertRepository define el puerto de persistencia para alertas de stock bajo.
type LowStockAlertRepository interface {
	Create(alert *entity.LowStockAlert) error
	// FindOpen devuelve la alerta sin resolver más reciente de la partición, o nil.
	FindOpen(key entity.StockKey) (*entity.LowStockAlert, error)
	// ResolveOpen marca como resueltas todas las alertas abiertas de la partición.
	ResolveOpen(key entity.StockKey, resolvedAt time.Time) error
	ListOpen(limit, offset int) ([]*entity.LowStockAlert, error)
}
