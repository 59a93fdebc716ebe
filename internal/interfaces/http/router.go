// Package http registra las rutas y handlers Fiber de la API.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *catalog.ItemUseCase
	LocationUC *catalog.LocationUseCase
	EventUC    *catalog.EventUseCase
	StockUC    *stock.UseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las mutaciones del catálogo requieren
// rol admin; los movimientos de stock y las consultas admiten admin y staff.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole("admin")

	// Items y variantes (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", adminOnly, itemHandler.Update)
	items.Post("/:id/variants", adminOnly, itemHandler.CreateVariant)
	items.Get("/:id/variants", itemHandler.ListVariants)
	protected.Delete("/variants/:id", adminOnly, itemHandler.DeactivateVariant)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", adminOnly, locationHandler.Update)

	// Events (protegido)
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id", eventHandler.Update)

	// Stock, movimientos y alertas (protegido)
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup := protected.Group("/stock")
	stockGroup.Post("/in", stockHandler.StockIn)
	stockGroup.Post("/out", stockHandler.StockOut)
	stockGroup.Get("/levels", stockHandler.StockLevels)
	stockGroup.Get("/", stockHandler.CurrentStock)
	protected.Get("/transactions", stockHandler.ListTransactions)
	protected.Get("/alerts", stockHandler.OpenAlerts)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reports.Get("/event-usage/:event_id", stockHandler.EventUsage)
}
