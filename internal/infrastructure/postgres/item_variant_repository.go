package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ItemVariantRepository = (*ItemVariantRepo)(nil)

// ItemVariantRepo implementación de ItemVariantRepository sobre PostgreSQL.
type ItemVariantRepo struct {
	q Querier
}

// NewItemVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemVariantRepository(q Querier) *ItemVariantRepo {
	return &ItemVariantRepo{q: q}
}

// Create persiste una variante. (item_id, variant_name) duplicado -> domain.ErrDuplicate.
func (r *ItemVariantRepo) Create(variant *entity.ItemVariant) error {
	query := `
		INSERT INTO item_variants (id, item_id, variant_name, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		variant.ID, variant.ItemID, variant.VariantName, variant.IsActive, variant.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item variant: %w", err)
	}
	return nil
}

// GetByID obtiene una variante por ID; nil si no existe.
func (r *ItemVariantRepo) GetByID(id string) (*entity.ItemVariant, error) {
	query := `
		SELECT id, item_id, variant_name, is_active, created_at
		FROM item_variants WHERE id = $1`
	var v entity.ItemVariant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ItemID, &v.VariantName, &v.IsActive, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item variant: %w", err)
	}
	return &v, nil
}

// Update actualiza una variante existente.
func (r *ItemVariantRepo) Update(variant *entity.ItemVariant) error {
	query := `
		UPDATE item_variants SET variant_name = $2, is_active = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		variant.ID, variant.VariantName, variant.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item variant: %w", err)
	}
	return nil
}

// ListByItem lista las variantes de un artículo ordenadas por nombre.
func (r *ItemVariantRepo) ListByItem(itemID string, onlyActive bool) ([]*entity.ItemVariant, error) {
	query := `
		SELECT id, item_id, variant_name, is_active, created_at
		FROM item_variants WHERE item_id = $1`
	if onlyActive {
		query += ` AND is_active`
	}
	query += ` ORDER BY variant_name`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemVariant
	for rows.Next() {
		var v entity.ItemVariant
		if err := rows.Scan(&v.ID, &v.ItemID, &v.VariantName, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item variant: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
