package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ItemHandler maneja las peticiones HTTP del catálogo de artículos y variantes.
type ItemHandler struct {
	uc *catalog.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *catalog.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category, has_variants"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID (UUID)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Item ID (UUID)"
// @Param        body  body  dto.UpdateItemRequest  true  "campos opcionales"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(item)
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool  false  "Solo artículos activos"
// @Param        limit        query  int   false  "Tamaño de página (máx 100)"
// @Param        offset       query  int   false  "Desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.QueryBool("only_active"), page.Limit, page.Offset)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(list)
}

// CreateVariant godoc
// @Summary      Crear variante de un artículo
// @Description  Solo para artículos con has_variants=true.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Item ID (UUID)"
// @Param        body  body  dto.CreateVariantRequest  true  "variant_name"
// @Success      201   {object}  dto.VariantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/variants [post]
func (h *ItemHandler) CreateVariant(c *fiber.Ctx) error {
	var in dto.CreateVariantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	variant, err := h.uc.CreateVariant(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnexpectedVariant) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el artículo no admite variantes"})
		}
		return mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(variant)
}

// ListVariants godoc
// @Summary      Listar variantes de un artículo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id           path   string  true   "Item ID (UUID)"
// @Param        only_active  query  bool    false  "Solo variantes activas"
// @Success      200  {array}   dto.VariantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/variants [get]
func (h *ItemHandler) ListVariants(c *fiber.Ctx) error {
	variants, err := h.uc.ListVariants(c.Params("id"), c.QueryBool("only_active"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(variants)
}

// DeactivateVariant godoc
// @Summary      Desactivar variante
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Variant ID (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/variants/{id} [delete]
func (h *ItemHandler) DeactivateVariant(c *fiber.Ctx) error {
	if err := h.uc.DeactivateVariant(c.Params("id")); err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"message": "variante desactivada"})
}

// mapCatalogError traduce errores de dominio del catálogo a respuestas HTTP.
func mapCatalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrLocationNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
