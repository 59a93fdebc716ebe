package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByName(name string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(onlyActive bool, limit, offset int) ([]*entity.Item, error)
}
