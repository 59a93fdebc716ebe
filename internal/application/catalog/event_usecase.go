package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const eventDateLayout = "2006-01-02"

// EventUseCase casos de uso CRUD para eventos. La ubicación del evento es
// referencial: no se valida contra las transacciones que lo citan.
type EventUseCase struct {
	repo         repository.EventRepository
	locationRepo repository.LocationRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository, locationRepo repository.LocationRepository) *EventUseCase {
	return &EventUseCase{repo: repo, locationRepo: locationRepo}
}

// Create crea un nuevo evento.
func (uc *EventUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	name := strings.TrimSpace(in.Name)
	eventType := strings.TrimSpace(in.EventType)
	if name == "" || eventType == "" {
		return nil, domain.ErrInvalidInput
	}
	eventDate, err := time.Parse(eventDateLayout, in.EventDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrLocationNotFound
		}
	}
	event := &entity.Event{
		ID:         uuid.New().String(),
		Name:       name,
		EventType:  eventType,
		EventDate:  eventDate,
		LocationID: in.LocationID,
		Notes:      strings.TrimSpace(in.Notes),
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// GetByID obtiene un evento por ID; nil si no existe.
func (uc *EventUseCase) GetByID(id string) (*dto.EventResponse, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	return toEventResponse(event), nil
}

// Update actualiza un evento existente.
func (uc *EventUseCase) Update(id string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		event.Name = strings.TrimSpace(*in.Name)
	}
	if in.EventType != nil && strings.TrimSpace(*in.EventType) != "" {
		event.EventType = strings.TrimSpace(*in.EventType)
	}
	if in.EventDate != nil {
		eventDate, err := time.Parse(eventDateLayout, *in.EventDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		event.EventDate = eventDate
	}
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrLocationNotFound
		}
		event.LocationID = in.LocationID
	}
	if in.Notes != nil {
		event.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.IsActive != nil {
		event.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// List lista eventos con paginación.
func (uc *EventUseCase) List(onlyActive bool, limit, offset int) (*dto.EventListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventResponse(e))
	}
	return &dto.EventListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:         e.ID,
		Name:       e.Name,
		EventType:  e.EventType,
		EventDate:  e.EventDate.Format(eventDateLayout),
		LocationID: e.LocationID,
		Notes:      e.Notes,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
	}
}
