package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// Mensajes públicos de las rutas de slug.
const (
	msgCategoryNotFound = "Category not found"
	msgProductNotFound  = "Product not found"
	msgServerError      = "Server error"
)

// SlugHandler publica el catálogo por slugs. La estrategia (slug exacto o patrón de nombre)
// la decide el Resolver inyectado.
type SlugHandler struct {
	resolver catalog.Resolver
	log      *logger.Logger
}

// NewSlugHandler construye el handler.
func NewSlugHandler(resolver catalog.Resolver, log *logger.Logger) *SlugHandler {
	return &SlugHandler{resolver: resolver, log: log}
}

// Handle atiende /slug/:categorySlug?/:productSlug?. Sin ningún parámetro cede al siguiente handler.
//
// @Summary      Categoría o producto por slug
// @Tags         slug
// @Produce      json
// @Param        categorySlug  path  string  true   "Slug de la categoría"
// @Param        productSlug   path  string  false  "Slug del producto"
// @Success      200  {object}  dto.SlugCategoryResponse
// @Success      200  {object}  dto.SlugProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /slug/{categorySlug}/{productSlug} [get]
func (h *SlugHandler) Handle(c *fiber.Ctx) error {
	categorySlug := pathParam(c, "categorySlug")
	productSlug := pathParam(c, "productSlug")

	switch {
	case categorySlug == "" && productSlug == "":
		return c.Next()
	case productSlug == "":
		return h.category(c, categorySlug)
	default:
		return h.product(c, categorySlug, productSlug)
	}
}

// pathParam devuelve el parámetro decodificado ("caf%C3%A9" -> "café"). Fiber entrega la ruta cruda.
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (h *SlugHandler) category(c *fiber.Ctx, categorySlug string) error {
	category, products, err := h.resolver.ResolveCategoryProducts(c.UserContext(), categorySlug)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewSlugCategoryResponse(category, products))
}

func (h *SlugHandler) product(c *fiber.Ctx, categorySlug, productSlug string) error {
	product, err := h.resolver.ResolveProduct(c.UserContext(), categorySlug, productSlug)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.SlugProductResponse{Product: dto.NewProductResponse(product)})
}

// fail traduce el error a 404 (categoría o producto inexistente) o 500 con el mensaje original.
func (h *SlugHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: msgCategoryNotFound})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: msgProductNotFound})
	}
	h.log.Error().Err(err).
		Str("category_slug", pathParam(c, "categorySlug")).
		Str("product_slug", pathParam(c, "productSlug")).
		Msg("resolución de slug")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: msgServerError, Error: err.Error()})
}
