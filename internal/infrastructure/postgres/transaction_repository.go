package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: no hay UPDATE ni DELETE.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, transaction_type, item_id, item_variant_id, location_id, event_id, quantity, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.TransactionType, tx.ItemID, tx.ItemVariantID,
		tx.LocationID, tx.EventID, tx.Quantity, tx.Reason, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID; nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, transaction_type, item_id, item_variant_id, location_id, event_id, quantity, reason, created_by, created_at
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TransactionType, &t.ItemID, &t.ItemVariantID,
		&t.LocationID, &t.EventID, &t.Quantity, &t.Reason, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// CurrentStock deriva el stock disponible de la partición: suma con signo de
// los asientos (IN suma, OUT resta). IS NOT DISTINCT FROM hace que la variante
// nil sea su propia partición: nunca agrega sobre las variantes.
func (r *TransactionRepo) CurrentStock(key entity.StockKey) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'IN' THEN quantity ELSE -quantity END), 0)
		FROM transactions
		WHERE item_id = $1 AND location_id = $2 AND item_variant_id IS NOT DISTINCT FROM $3`
	var total int64
	err := r.q.QueryRow(context.Background(), query, key.ItemID, key.LocationID, key.VariantID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("current stock: %w", err)
	}
	return total, nil
}

// LockStockKey toma un advisory lock transaccional derivado de la partición.
// El libro es append-only (no hay fila de stock que bloquear con FOR UPDATE),
// así que el lock serializa la ventana leer-comparar-escribir de las salidas
// concurrentes sobre la misma partición. Se libera solo al terminar la tx.
func (r *TransactionRepo) LockStockKey(key entity.StockKey) error {
	variant := ""
	if key.VariantID != nil {
		variant = *key.VariantID
	}
	lockKey := key.ItemID + "|" + key.LocationID + "|" + variant
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, lockKey)
	if err != nil {
		return fmt.Errorf("lock stock key: %w", err)
	}
	return nil
}

// List lista asientos con filtros opcionales, ordenados del más reciente al más antiguo.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `
		SELECT id, transaction_type, item_id, item_variant_id, location_id, event_id, quantity, reason, created_by, created_at
		FROM transactions WHERE 1=1`
	var args []any
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND transaction_type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.TransactionType, &t.ItemID, &t.ItemVariantID,
			&t.LocationID, &t.EventID, &t.Quantity, &t.Reason, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// StockLevels deriva el stock disponible por partición (item, variante,
// ubicación) agregando el libro. locationID vacío incluye todas las ubicaciones.
func (r *TransactionRepo) StockLevels(locationID string) ([]repository.StockLevelResult, error) {
	query := `
		SELECT t.item_id, i.name, t.item_variant_id, v.variant_name, t.location_id, l.name,
		       COALESCE(SUM(CASE WHEN t.transaction_type = 'IN' THEN t.quantity ELSE -t.quantity END), 0) AS on_hand
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		JOIN locations l ON l.id = t.location_id
		LEFT JOIN item_variants v ON v.id = t.item_variant_id`
	var args []any
	if locationID != "" {
		query += ` WHERE t.location_id = $1`
		args = append(args, locationID)
	}
	query += `
		GROUP BY t.item_id, i.name, t.item_variant_id, v.variant_name, t.location_id, l.name
		ORDER BY i.name, v.variant_name NULLS FIRST, l.name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
	}
	defer rows.Close()
	var list []repository.StockLevelResult
	for rows.Next() {
		var s repository.StockLevelResult
		if err := rows.Scan(&s.ItemID, &s.ItemName, &s.VariantID, &s.VariantName,
			&s.LocationID, &s.Location, &s.OnHand); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UsageByEvent totaliza las salidas atribuidas a un evento por item/variante.
func (r *TransactionRepo) UsageByEvent(eventID string) ([]repository.EventUsageResult, error) {
	query := `
		SELECT t.item_id, i.name, t.item_variant_id, v.variant_name,
		       COALESCE(SUM(t.quantity), 0) AS total_out
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		LEFT JOIN item_variants v ON v.id = t.item_variant_id
		WHERE t.event_id = $1 AND t.transaction_type = 'OUT'
		GROUP BY t.item_id, i.name, t.item_variant_id, v.variant_name
		ORDER BY total_out DESC`
	rows, err := r.q.Query(context.Background(), query, eventID)
	if err != nil {
		return nil, fmt.Errorf("usage by event: %w", err)
	}
	defer rows.Close()
	var list []repository.EventUsageResult
	for rows.Next() {
		var u repository.EventUsageResult
		if err := rows.Scan(&u.ItemID, &u.ItemName, &u.VariantID, &u.VariantName, &u.TotalOut); err != nil {
			return nil, fmt.Errorf("scan event usage: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
