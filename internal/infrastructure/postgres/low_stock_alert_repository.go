package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.LowStockAlertRepository = (*LowStockAlertRepo)(nil)

// LowStockAlertRepo implementación PostgreSQL de las alertas de stock bajo.
type LowStockAlertRepo struct {
	q Querier
}

func NewLowStockAlertRepository(q Querier) *LowStockAlertRepo {
	return &LowStockAlertRepo{q: q}
}

func (r *LowStockAlertRepo) Create(alert *entity.LowStockAlert) error {
	query := `
		INSERT INTO low_stock_alerts (id, location_id, item_id, item_variant_id, threshold, triggered_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.LocationID, alert.ItemID, alert.ItemVariantID,
		alert.Threshold, alert.TriggeredAt, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("create low stock alert: %w", err)
	}
	return nil
}

// FindOpen devuelve la alerta sin resolver más reciente de la partición, o nil.
func (r *LowStockAlertRepo) FindOpen(key entity.StockKey) (*entity.LowStockAlert, error) {
	query := `
		SELECT id, location_id, item_id, item_variant_id, threshold, triggered_at, resolved_at
		FROM low_stock_alerts
		WHERE item_id = $1 AND location_id = $2 AND item_variant_id IS NOT DISTINCT FROM $3
		  AND resolved_at IS NULL
		ORDER BY triggered_at DESC
		LIMIT 1`
	var a entity.LowStockAlert
	err := r.q.QueryRow(context.Background(), query, key.ItemID, key.LocationID, key.VariantID).Scan(
		&a.ID, &a.LocationID, &a.ItemID, &a.ItemVariantID, &a.Threshold, &a.TriggeredAt, &a.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open alert: %w", err)
	}
	return &a, nil
}

// ResolveOpen marca como resueltas todas las alertas abiertas de la partición.
func (r *LowStockAlertRepo) ResolveOpen(key entity.StockKey, resolvedAt time.Time) error {
	query := `
		UPDATE low_stock_alerts SET resolved_at = $4
		WHERE item_id = $1 AND location_id = $2 AND item_variant_id IS NOT DISTINCT FROM $3
		  AND resolved_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, key.ItemID, key.LocationID, key.VariantID, resolvedAt)
	if err != nil {
		return fmt.Errorf("resolve open alerts: %w", err)
	}
	return nil
}

func (r *LowStockAlertRepo) ListOpen(limit, offset int) ([]*entity.LowStockAlert, error) {
	query := `
		SELECT id, location_id, item_id, item_variant_id, threshold, triggered_at, resolved_at
		FROM low_stock_alerts
		WHERE resolved_at IS NULL
		ORDER BY triggered_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list open alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.LowStockAlert
	for rows.Next() {
		var a entity.LowStockAlert
		if err := rows.Scan(&a.ID, &a.LocationID, &a.ItemID, &a.ItemVariantID,
			&a.Threshold, &a.TriggeredAt, &a.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
