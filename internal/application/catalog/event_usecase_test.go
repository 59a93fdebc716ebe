package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

type memEventRepo struct {
	events map[string]*entity.Event
}

func (m *memEventRepo) Create(e *entity.Event) error              { m.events[e.ID] = e; return nil }
func (m *memEventRepo) GetByID(id string) (*entity.Event, error)  { return m.events[id], nil }
func (m *memEventRepo) Update(e *entity.Event) error              { m.events[e.ID] = e; return nil }
func (m *memEventRepo) List(onlyActive bool, limit, offset int) ([]*entity.Event, error) {
	var out []*entity.Event
	for _, e := range m.events {
		if !onlyActive || e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

type memLocationRepo struct {
	locations map[string]*entity.Location
}

func (m *memLocationRepo) Create(l *entity.Location) error { m.locations[l.ID] = l; return nil }
func (m *memLocationRepo) GetByID(id string) (*entity.Location, error) {
	return m.locations[id], nil
}
func (m *memLocationRepo) GetByName(name string) (*entity.Location, error) {
	for _, l := range m.locations {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, nil
}
func (m *memLocationRepo) Update(l *entity.Location) error { m.locations[l.ID] = l; return nil }
func (m *memLocationRepo) List(onlyActive bool, limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range m.locations {
		if !onlyActive || l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func newEventUC(locations ...*entity.Location) *catalog.EventUseCase {
	locRepo := &memLocationRepo{locations: map[string]*entity.Location{}}
	for _, l := range locations {
		locRepo.locations[l.ID] = l
	}
	return catalog.NewEventUseCase(&memEventRepo{events: map[string]*entity.Event{}}, locRepo)
}

func TestEventCreate_FechaValida(t *testing.T) {
	uc := newEventUC()

	event, err := uc.Create(dto.CreateEventRequest{
		Name: "Open Day", EventType: "Fair", EventDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", event.EventDate)
}

func TestEventCreate_FechaInvalida(t *testing.T) {
	uc := newEventUC()

	_, err := uc.Create(dto.CreateEventRequest{
		Name: "Open Day", EventType: "Fair", EventDate: "15/09/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventCreate_UbicacionDebeExistir(t *testing.T) {
	storage := &entity.Location{ID: uuid.NewString(), Name: "Storage Room", IsActive: true}
	uc := newEventUC(storage)

	event, err := uc.Create(dto.CreateEventRequest{
		Name: "Open Day", EventType: "Fair", EventDate: "2026-09-15", LocationID: &storage.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, event.LocationID)
	assert.Equal(t, storage.ID, *event.LocationID)

	missing := uuid.NewString()
	_, err = uc.Create(dto.CreateEventRequest{
		Name: "Career Fair", EventType: "Fair", EventDate: "2026-10-01", LocationID: &missing,
	})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}
