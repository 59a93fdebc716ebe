package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ItemVariantRepository define el puerto de persistencia para variantes de artículo.
type ItemVariantRepository interface {
	Create(variant *entity.ItemVariant) error
	GetByID(id string) (*entity.ItemVariant, error)
	Update(variant *entity.ItemVariant) error
	ListByItem(itemID string, onlyActive bool) ([]*entity.ItemVariant, error)
}
