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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación. Nombre duplicado -> domain.ErrDuplicate.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	description := (*string)(nil)
	if location.Description != "" {
		description = &location.Description
	}
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, description, location.IsActive, location.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM locations WHERE id = $1`
	var l entity.Location
	var description *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &description, &l.IsActive, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	if description != nil {
		l.Description = *description
	}
	return &l, nil
}

// GetByName obtiene una ubicación por nombre; nil si no existe.
func (r *LocationRepo) GetByName(name string) (*entity.Location, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM locations WHERE name = $1`
	var l entity.Location
	var description *string
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&l.ID, &l.Name, &description, &l.IsActive, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by name: %w", err)
	}
	if description != nil {
		l.Description = *description
	}
	return &l, nil
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, description = $3, is_active = $4
		WHERE id = $1`
	description := (*string)(nil)
	if location.Description != "" {
		description = &location.Description
	}
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, description, location.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List lista ubicaciones con paginación; onlyActive filtra inactivas.
func (r *LocationRepo) List(onlyActive bool, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM locations`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		var description *string
		if err := rows.Scan(&l.ID, &l.Name, &description, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		if description != nil {
			l.Description = *description
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
