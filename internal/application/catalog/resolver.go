// Package catalog resuelve slugs de URL a categorías y productos del catálogo.
package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// Estrategias de resolución disponibles (CATALOG_RESOLVER).
const (
	ModeSlug = "slug" // igualdad exacta contra el campo slug
	ModeName = "name" // patrón "el nombre empieza por" derivado del slug
)

// Resolver traduce los slugs de la URL a documentos almacenados.
// Devuelve domain.ErrCategoryNotFound o domain.ErrProductNotFound cuando falta alguno;
// cualquier otro error proviene del almacén.
type Resolver interface {
	ResolveCategory(ctx context.Context, categorySlug string) (*entity.Category, error)
	ResolveCategoryProducts(ctx context.Context, categorySlug string) (*entity.Category, []*entity.Product, error)
	ResolveProduct(ctx context.Context, categorySlug, productSlug string) (*entity.Product, error)
}

// NewResolver construye la estrategia indicada por configuración.
func NewResolver(mode string, categories repository.CategoryRepository, products repository.ProductRepository) (Resolver, error) {
	switch mode {
	case ModeSlug, "":
		return NewSlugResolver(categories, products), nil
	case ModeName:
		return NewNameResolver(categories, products), nil
	default:
		return nil, fmt.Errorf("estrategia de resolución desconocida: %q", mode)
	}
}

// resolveProducts obtiene los productos visibles de una categoría ya resuelta.
func resolveProducts(ctx context.Context, products repository.ProductRepository, category *entity.Category) ([]*entity.Product, error) {
	list, err := products.FindByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Product{}
	}
	return list, nil
}
