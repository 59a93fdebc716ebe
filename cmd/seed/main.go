// seed puebla el catálogo base (ubicación Storage Room, artículos con y sin
// variantes de talla) y registra el stock inicial como entradas del libro.
// Es idempotente: artículos y ubicaciones existentes no se duplican, pero el
// stock inicial solo se carga si la partición está vacía.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

const (
	seedReason = "Initial seeded stock"
	seedActor  = "System Seed"
)

type seedItem struct {
	name        string
	category    string
	hasVariants bool
	stock       int64
}

var seedItems = []seedItem{
	{"T shirt", entity.CategoryApparel, true, 120},
	{"Hoodie", entity.CategoryApparel, true, 60},
	{"Staff jacket", entity.CategoryApparel, true, 25},
	{"Hat", entity.CategoryApparel, false, 80},
	{"Tote bag", entity.CategoryApparel, false, 75},
	{"Pen", entity.CategoryStationery, false, 500},
	{"Pencil", entity.CategoryStationery, false, 300},
	{"Folder", entity.CategoryStationery, false, 200},
	{"Sticker", entity.CategoryStationery, false, 400},
	{"Keychain", entity.CategoryStationery, false, 150},
	{"Brochure", entity.CategoryPrinted, false, 800},
	{"Campus map", entity.CategoryPrinted, false, 600},
	{"Program guide", entity.CategoryPrinted, false, 250},
	{"Mascot doll", entity.CategoryFunItem, false, 40},
	{"Name tags", entity.CategoryEventEquipment, false, 150},
	{"Badge holders", entity.CategoryEventEquipment, false, 150},
	{"Tablecloth", entity.CategoryEventEquipment, false, 10},
	{"Banner", entity.CategoryEventEquipment, false, 5},
}

var sizeVariants = []string{"XS", "S", "M", "L", "XL", "XXL"}

// nopNotifier desactiva el correo durante la carga inicial.
type nopNotifier struct{}

func (nopNotifier) SendStockOut(subject, body string) error { return nil }
func (nopNotifier) SendLowStock(subject, body string) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("creación del esquema")
	}

	itemRepo := postgres.NewItemRepository(pool)
	variantRepo := postgres.NewItemVariantRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	alertRepo := postgres.NewLowStockAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewUseCase(
		txRunner, itemRepo, variantRepo, locationRepo, eventRepo,
		txRepo, alertRepo, nopNotifier{}, cfg.Alerts, log,
	)

	// Ubicación principal
	location, err := locationRepo.GetByName("Storage Room")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar ubicación")
	}
	if location == nil {
		location = &entity.Location{
			ID:          uuid.NewString(),
			Name:        "Storage Room",
			Description: "Main storage location",
			IsActive:    true,
			CreatedAt:   time.Now().UTC(),
		}
		if err := locationRepo.Create(location); err != nil {
			log.Fatal().Err(err).Msg("crear ubicación")
		}
		log.Info().Str("name", location.Name).Msg("ubicación creada")
	}

	for _, s := range seedItems {
		item, err := itemRepo.GetByName(s.name)
		if err != nil {
			log.Fatal().Err(err).Str("item", s.name).Msg("buscar artículo")
		}
		if item == nil {
			item = &entity.Item{
				ID:          uuid.NewString(),
				Name:        s.name,
				Category:    s.category,
				HasVariants: s.hasVariants,
				IsActive:    true,
				CreatedAt:   time.Now().UTC(),
				UpdatedAt:   time.Now().UTC(),
			}
			if err := itemRepo.Create(item); err != nil {
				log.Fatal().Err(err).Str("item", s.name).Msg("crear artículo")
			}
		}

		if !s.hasVariants {
			seedStock(ctx, log, stockUC, item.ID, nil, location.ID, s.stock)
			continue
		}

		existing, err := variantRepo.ListByItem(item.ID, false)
		if err != nil {
			log.Fatal().Err(err).Str("item", s.name).Msg("listar variantes")
		}
		byName := make(map[string]*entity.ItemVariant, len(existing))
		for _, v := range existing {
			byName[v.VariantName] = v
		}
		perSize := s.stock / int64(len(sizeVariants))
		if perSize < 1 {
			perSize = 1
		}
		for _, size := range sizeVariants {
			variant := byName[size]
			if variant == nil {
				variant = &entity.ItemVariant{
					ID:          uuid.NewString(),
					ItemID:      item.ID,
					VariantName: size,
					IsActive:    true,
					CreatedAt:   time.Now().UTC(),
				}
				if err := variantRepo.Create(variant); err != nil {
					log.Fatal().Err(err).Str("item", s.name).Str("size", size).Msg("crear variante")
				}
			}
			seedStock(ctx, log, stockUC, item.ID, &variant.ID, location.ID, perSize)
		}
	}

	log.Info().Msg("carga inicial completa")
}

// seedStock registra la entrada inicial solo si la partición no tiene movimientos.
func seedStock(ctx context.Context, log *logger.Logger, uc *stock.UseCase, itemID string, variantID *string, locationID string, qty int64) {
	key := entity.StockKey{ItemID: itemID, LocationID: locationID, VariantID: variantID}
	current, err := uc.CurrentStock(ctx, key)
	if err != nil {
		log.Fatal().Err(err).Str("item_id", itemID).Msg("consultar stock")
	}
	if current > 0 {
		return
	}
	_, err = uc.StockIn(ctx, dto.StockMovementRequest{
		ItemID:     itemID,
		VariantID:  variantID,
		LocationID: locationID,
		Quantity:   qty,
		Reason:     seedReason,
		CreatedBy:  seedActor,
	})
	if err != nil {
		log.Fatal().Err(err).Str("item_id", itemID).Msg("registrar stock inicial")
	}
}
