package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// UseCase registra entradas y salidas en el libro de movimientos de forma
// transaccional y dispara los efectos posteriores al commit (correo de salida,
// chequeo de stock bajo). La validación completa ocurre antes de cualquier
// escritura; el lock por partición serializa la ventana leer-comparar-escribir
// de las salidas para que el stock nunca quede negativo.
type UseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	variantRepo  repository.ItemVariantRepository
	locationRepo repository.LocationRepository
	eventRepo    repository.EventRepository
	txRepo       repository.TransactionRepository // lecturas fuera de transacción
	alertRepo    repository.LowStockAlertRepository
	notifier     Notifier
	alerts       config.AlertsConfig
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de stock.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	variantRepo repository.ItemVariantRepository,
	locationRepo repository.LocationRepository,
	eventRepo repository.EventRepository,
	txRepo repository.TransactionRepository,
	alertRepo repository.LowStockAlertRepository,
	notifier Notifier,
	alerts config.AlertsConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		variantRepo:  variantRepo,
		locationRepo: locationRepo,
		eventRepo:    eventRepo,
		txRepo:       txRepo,
		alertRepo:    alertRepo,
		notifier:     notifier,
		alerts:       alerts,
		log:          log,
	}
}

// CurrentStock devuelve el stock disponible de una partición: sum(IN) - sum(OUT)
// sobre el libro. Devuelve 0 si la partición no tiene movimientos. Sin efectos.
func (uc *UseCase) CurrentStock(ctx context.Context, key entity.StockKey) (int64, error) {
	return uc.txRepo.CurrentStock(key)
}

// validated datos resueltos durante la validación, reutilizados por los efectos.
type validated struct {
	item     *entity.Item
	variant  *entity.ItemVariant // nil para artículos sin variantes
	location *entity.Location
	key      entity.StockKey
}

// validate aplica la secuencia de validación compartida de entradas y salidas.
// Falla rápido en la primera violación; no escribe nada.
func (uc *UseCase) validate(in dto.StockMovementRequest) (*validated, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrMissingReason
	}
	if strings.TrimSpace(in.CreatedBy) == "" {
		return nil, domain.ErrMissingActor
	}

	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.IsActive {
		return nil, domain.ErrItemNotFound
	}

	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil || !location.IsActive {
		return nil, domain.ErrLocationNotFound
	}

	v := &validated{item: item, location: location, key: entity.StockKey{
		ItemID:     in.ItemID,
		LocationID: in.LocationID,
		VariantID:  in.VariantID,
	}}

	if item.HasVariants {
		if in.VariantID == nil {
			return nil, domain.ErrVariantRequired
		}
		variant, err := uc.variantRepo.GetByID(*in.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil || !variant.IsActive || variant.ItemID != item.ID {
			return nil, domain.ErrVariantMismatch
		}
		v.variant = variant
	} else if in.VariantID != nil {
		return nil, domain.ErrUnexpectedVariant
	}

	return v, nil
}

// StockIn valida y registra una entrada. Devuelve el asiento creado y el stock
// resultante. Si la entrada sube el stock por encima del umbral, resuelve las
// alertas abiertas de la partición.
func (uc *UseCase) StockIn(ctx context.Context, in dto.StockMovementRequest) (*dto.StockMovementResponse, error) {
	v, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	tx := newTransaction(entity.TransactionTypeIN, in)
	var onHand int64
	err = uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository) error {
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		current, err := txRepo.CurrentStock(v.key)
		if err != nil {
			return err
		}
		onHand = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.resolveIfRecovered(v.key, onHand)

	return &dto.StockMovementResponse{
		Transaction: toTransactionResponse(tx),
		OnHand:      onHand,
	}, nil
}

// StockOut valida y registra una salida. Dentro de una sola transacción de BD
// bloquea la partición, compara contra el stock disponible y escribe el asiento;
// la cantidad puede llevar el stock exactamente a 0, nunca a negativo. Tras el
// commit envía la notificación de salida y ejecuta el chequeo de stock bajo:
// ninguno de los dos puede deshacer el asiento ya escrito.
func (uc *UseCase) StockOut(ctx context.Context, in dto.StockMovementRequest) (*dto.StockMovementResponse, error) {
	v, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	threshold := uc.alerts.Threshold
	if in.Threshold != nil {
		threshold = *in.Threshold
	}

	tx := newTransaction(entity.TransactionTypeOUT, in)
	var onHand int64
	err = uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository) error {
		if err := txRepo.LockStockKey(v.key); err != nil {
			return err
		}
		current, err := txRepo.CurrentStock(v.key)
		if err != nil {
			return err
		}
		if in.Quantity > current {
			return &domain.InsufficientStockError{Current: current, Requested: in.Quantity}
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		onHand = current - in.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.StockMovementResponse{
		Transaction: toTransactionResponse(tx),
		OnHand:      onHand,
	}

	// Efectos posteriores al commit: la notificación refleja el estado ya escrito.
	if err := uc.notifyStockOut(v, tx, onHand); err != nil {
		uc.log.Error().Err(err).
			Str("item_id", v.item.ID).
			Str("location_id", v.location.ID).
			Msg("notificación de salida de stock falló")
		if uc.alerts.NotifyPolicy == config.NotifyPolicyStrict {
			resp.Warning = "el asiento quedó registrado pero la notificación falló"
			return resp, fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
		}
	}

	// El chequeo de stock bajo nunca bloquea la respuesta de la salida.
	if err := uc.CheckAndAlert(ctx, v.key, threshold); err != nil {
		uc.log.Error().Err(err).
			Str("item_id", v.item.ID).
			Str("location_id", v.location.ID).
			Msg("chequeo de stock bajo falló")
	}

	return resp, nil
}

// notifyStockOut arma y envía el correo de salida de stock.
func (uc *UseCase) notifyStockOut(v *validated, tx *entity.Transaction, onHand int64) error {
	variantName := ""
	if v.variant != nil {
		variantName = v.variant.VariantName
	}
	eventName := ""
	if tx.EventID != nil {
		if ev, err := uc.eventRepo.GetByID(*tx.EventID); err == nil && ev != nil {
			eventName = ev.Name
		}
	}
	subject, body := BuildStockOutEmail(StockOutEmailData{
		ItemName:    v.item.Name,
		VariantName: variantName,
		Location:    v.location.Name,
		Quantity:    tx.Quantity,
		OnHand:      onHand,
		Reason:      tx.Reason,
		CreatedBy:   tx.CreatedBy,
		EventName:   eventName,
	})
	return uc.notifier.SendStockOut(subject, body)
}

func newTransaction(txType string, in dto.StockMovementRequest) *entity.Transaction {
	return &entity.Transaction{
		ID:              uuid.New().String(),
		TransactionType: txType,
		ItemID:          in.ItemID,
		ItemVariantID:   in.VariantID,
		LocationID:      in.LocationID,
		EventID:         in.EventID,
		Quantity:        in.Quantity,
		Reason:          strings.TrimSpace(in.Reason),
		CreatedBy:       strings.TrimSpace(in.CreatedBy),
		CreatedAt:       time.Now(),
	}
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              tx.ID,
		TransactionType: tx.TransactionType,
		ItemID:          tx.ItemID,
		VariantID:       tx.ItemVariantID,
		LocationID:      tx.LocationID,
		EventID:         tx.EventID,
		Quantity:        tx.Quantity,
		Reason:          tx.Reason,
		CreatedBy:       tx.CreatedBy,
		CreatedAt:       tx.CreatedAt,
	}
}
