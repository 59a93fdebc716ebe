package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CheckAndAlert recalcula el stock de la partición y, si quedó en o por debajo
// del umbral, registra la ocurrencia y envía el correo de alerta. Por encima
// del umbral no hace nada. Se invoca en cada salida que califique: sin
// deduplicación el correo se reenvía cada vez; con Alerts.Dedup activo se
// omite mientras exista una alerta abierta (la fila abierta no se duplica en
// ningún caso).
func (uc *UseCase) CheckAndAlert(ctx context.Context, key entity.StockKey, threshold int64) error {
	current, err := uc.txRepo.CurrentStock(key)
	if err != nil {
		return err
	}
	if current > threshold {
		return nil
	}

	open, err := uc.alertRepo.FindOpen(key)
	if err != nil {
		return err
	}
	if open == nil {
		alert := &entity.LowStockAlert{
			ID:            uuid.New().String(),
			LocationID:    key.LocationID,
			ItemID:        key.ItemID,
			ItemVariantID: key.VariantID,
			Threshold:     threshold,
			TriggeredAt:   time.Now(),
		}
		if err := uc.alertRepo.Create(alert); err != nil {
			return err
		}
	} else if uc.alerts.Dedup {
		return nil
	}

	item, err := uc.itemRepo.GetByID(key.ItemID)
	if err != nil || item == nil {
		return err
	}
	location, err := uc.locationRepo.GetByID(key.LocationID)
	if err != nil || location == nil {
		return err
	}
	variantName := ""
	if key.VariantID != nil {
		if variant, err := uc.variantRepo.GetByID(*key.VariantID); err == nil && variant != nil {
			variantName = variant.VariantName
		}
	}

	subject, body := BuildLowStockEmail(LowStockEmailData{
		ItemName:    item.Name,
		VariantName: variantName,
		Location:    location.Name,
		OnHand:      current,
		Threshold:   threshold,
	})
	return uc.notifier.SendLowStock(subject, body)
}

// resolveIfRecovered marca como resueltas las alertas abiertas de la partición
// cuando el stock volvió a superar el umbral configurado. Los errores solo se
// registran: la resolución es un efecto secundario de la entrada.
func (uc *UseCase) resolveIfRecovered(key entity.StockKey, onHand int64) {
	if onHand <= uc.alerts.Threshold {
		return
	}
	if err := uc.alertRepo.ResolveOpen(key, time.Now()); err != nil {
		uc.log.Warn().Err(err).
			Str("item_id", key.ItemID).
			Str("location_id", key.LocationID).
			Msg("no se pudieron resolver alertas abiertas")
	}
}
