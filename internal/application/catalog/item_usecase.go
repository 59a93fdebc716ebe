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

// ItemUseCase casos de uso CRUD para artículos y sus variantes.
type ItemUseCase struct {
	repo        repository.ItemRepository
	variantRepo repository.ItemVariantRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, variantRepo repository.ItemVariantRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, variantRepo: variantRepo}
}

// Create crea un nuevo artículo. El nombre es único en la organización.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Category) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		HasVariants: in.HasVariants,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update actualiza nombre, categoría o estado de un artículo.
// HasVariants no se puede cambiar: el libro ya contiene asientos con la forma actual.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) != "" {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos con paginación.
func (uc *ItemUseCase) List(onlyActive bool, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CreateVariant crea una variante (talla) para un artículo con variantes.
// (item_id, variant_name) es único.
func (uc *ItemUseCase) CreateVariant(itemID string, in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	name := strings.TrimSpace(in.VariantName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if !item.HasVariants {
		return nil, domain.ErrUnexpectedVariant
	}
	variant := &entity.ItemVariant{
		ID:          uuid.New().String(),
		ItemID:      itemID,
		VariantName: name,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// ListVariants lista las variantes de un artículo.
func (uc *ItemUseCase) ListVariants(itemID string, onlyActive bool) ([]dto.VariantResponse, error) {
	list, err := uc.variantRepo.ListByItem(itemID, onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVariantResponse(v))
	}
	return out, nil
}

// DeactivateVariant desactiva una variante sin borrarla (el libro la referencia).
func (uc *ItemUseCase) DeactivateVariant(id string) error {
	variant, err := uc.variantRepo.GetByID(id)
	if err != nil {
		return err
	}
	if variant == nil {
		return domain.ErrNotFound
	}
	variant.IsActive = false
	return uc.variantRepo.Update(variant)
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		HasVariants: item.HasVariants,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toVariantResponse(v *entity.ItemVariant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:          v.ID,
		ItemID:      v.ItemID,
		VariantName: v.VariantName,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
	}
}
