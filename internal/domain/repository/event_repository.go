package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// EventRepository define el puerto de persistencia para eventos.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	Update(event *entity.Event) error
	List(onlyActive bool, limit, offset int) ([]*entity.Event, error)
}
