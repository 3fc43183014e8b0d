package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// Roles autorizados a escribir en el catálogo.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Resolver    catalog.Resolver
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	Store       Pinger
	ServiceName string
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthHandler(deps.ServiceName, deps.Store))

	// Catálogo público por slug. Sin parámetros el handler cede al 404 por defecto.
	slugHandler := NewSlugHandler(deps.Resolver, deps.Log)
	app.Get("/slug/:categorySlug?/:productSlug?", slugHandler.Handle)

	// Escritura del catálogo (requiere Bearer Token)
	protected := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin, RoleEditor))

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	protected.Post("/categories", categoryHandler.Create)

	productHandler := NewProductHandler(deps.ProductUC)
	protected.Post("/products", productHandler.Create)
	protected.Delete("/products/:id", productHandler.Delete)
}
