package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación de EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un evento.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (id, name, event_type, event_date, location_id, notes, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	notes := (*string)(nil)
	if event.Notes != "" {
		notes = &event.Notes
	}
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Name, event.EventType, event.EventDate,
		event.LocationID, notes, event.IsActive, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID; nil si no existe.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `
		SELECT id, name, event_type, event_date, location_id, notes, is_active, created_at
		FROM events WHERE id = $1`
	var e entity.Event
	var notes *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.EventType, &e.EventDate, &e.LocationID, &notes, &e.IsActive, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if notes != nil {
		e.Notes = *notes
	}
	return &e, nil
}

// Update actualiza un evento existente.
func (r *EventRepo) Update(event *entity.Event) error {
	query := `
		UPDATE events SET name = $2, event_type = $3, event_date = $4, location_id = $5, notes = $6, is_active = $7
		WHERE id = $1`
	notes := (*string)(nil)
	if event.Notes != "" {
		notes = &event.Notes
	}
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Name, event.EventType, event.EventDate,
		event.LocationID, notes, event.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// List lista eventos ordenados por fecha descendente, con paginación.
func (r *EventRepo) List(onlyActive bool, limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT id, name, event_type, event_date, location_id, notes, is_active, created_at
		FROM events`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY event_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		var notes *string
		if err := rows.Scan(&e.ID, &e.Name, &e.EventType, &e.EventDate,
			&e.LocationID, &notes, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if notes != nil {
			e.Notes = *notes
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
