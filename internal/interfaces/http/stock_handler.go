package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP de movimientos, stock y reportes.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "item_id, variant_id (si aplica), location_id, quantity, reason"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CreatedBy == "" {
		in.CreatedBy = GetUsername(c)
	}
	resp, err := h.uc.StockIn(c.Context(), in)
	if err != nil {
		return mapStockError(c, err, resp)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Falla con 409 si la cantidad supera el stock disponible de la
//
//	partición (item, variante, ubicación). La cantidad puede llevar
//	el stock exactamente a 0.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "item_id, variant_id (si aplica), location_id, event_id (opcional), quantity, reason, threshold (opcional)"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CreatedBy == "" {
		in.CreatedBy = GetUsername(c)
	}
	resp, err := h.uc.StockOut(c.Context(), in)
	if err != nil {
		return mapStockError(c, err, resp)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CurrentStock godoc
// @Summary      Stock disponible de una partición
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  true   "Item ID (UUID)"
// @Param        location_id  query  string  true   "Location ID (UUID)"
// @Param        variant_id   query  string  false  "Variant ID (UUID); omitir para artículos sin variantes"
// @Success      200  {object}  dto.CurrentStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) CurrentStock(c *fiber.Ctx) error {
	itemID := c.Query("item_id")
	locationID := c.Query("location_id")
	if itemID == "" || locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id y location_id son requeridos"})
	}
	key := entity.SimpleKey(itemID, locationID)
	if v := c.Query("variant_id"); v != "" {
		key = entity.VariantKey(itemID, locationID, v)
	}
	onHand, err := h.uc.CurrentStock(c.Context(), key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CurrentStockResponse{
		ItemID:     key.ItemID,
		VariantID:  key.VariantID,
		LocationID: key.LocationID,
		OnHand:     onHand,
	})
}

// StockLevels godoc
// @Summary      Niveles de stock por partición
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por ubicación (UUID). Vacío = todas."
// @Success      200  {array}  dto.StockLevelDTO
// @Router       /api/stock/levels [get]
func (h *StockHandler) StockLevels(c *fiber.Ctx) error {
	levels, err := h.uc.StockLevels(c.Context(), c.Query("location_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(levels)
}

// ListTransactions godoc
// @Summary      Listar movimientos del libro
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  false  "Filtrar por artículo (UUID)"
// @Param        location_id  query  string  false  "Filtrar por ubicación (UUID)"
// @Param        type         query  string  false  "IN u OUT"
// @Param        from         query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        limit        query  int     false  "Tamaño de página (máx 100)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *StockHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()

	filter := repository.TransactionFilter{
		ItemID:     c.Query("item_id"),
		LocationID: c.Query("location_id"),
		Type:       c.Query("type"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	if filter.Type != "" && filter.Type != entity.TransactionTypeIN && filter.Type != entity.TransactionTypeOUT {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN u OUT"})
	}
	var err error
	if filter.From, err = parseTimeQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	if filter.To, err = parseTimeQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}

	list, err := h.uc.ListTransactions(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// EventUsage godoc
// @Summary      Uso de inventario por evento
// @Description  Totaliza las salidas atribuidas al evento por artículo/variante.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        event_id  path  string  true  "Event ID (UUID)"
// @Success      200  {array}   dto.EventUsageDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/event-usage/{event_id} [get]
func (h *StockHandler) EventUsage(c *fiber.Ctx) error {
	usage, err := h.uc.UsageByEvent(c.Context(), c.Params("event_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usage)
}

// OpenAlerts godoc
// @Summary      Alertas de stock bajo abiertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.LowStockAlertResponse
// @Router       /api/alerts [get]
func (h *StockHandler) OpenAlerts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	alerts, err := h.uc.OpenAlerts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(alerts)
}

// mapStockError traduce errores de un movimiento a respuestas HTTP. Con política
// strict un fallo de notificación llega con el asiento ya escrito: se responde
// 201 con el warning en el cuerpo, nunca un error que sugiera rollback.
func mapStockError(c *fiber.Ctx, err error, resp *dto.StockMovementResponse) error {
	switch {
	case errors.Is(err, domain.ErrNotificationFailed) && resp != nil:
		return c.Status(fiber.StatusCreated).JSON(resp)
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrMissingReason),
		errors.Is(err, domain.ErrMissingActor),
		errors.Is(err, domain.ErrVariantRequired),
		errors.Is(err, domain.ErrVariantMismatch),
		errors.Is(err, domain.ErrUnexpectedVariant),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrLocationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación no encontrada"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.IsInsufficientStock(err):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseTimeQuery acepta RFC3339 o fecha simple YYYY-MM-DD.
func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
