package catalog

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/slug"
)

var _ Resolver = (*NameResolver)(nil)

// NameResolver resuelve por prefijo del nombre (sin distinguir mayúsculas) reconstruido desde el slug.
// Sirve para documentos que aún no tienen slug almacenado.
//
// Primero busca el nombre exacto; si no existe, el primer creado de los que empiezan por ese texto
// (el almacén devuelve las coincidencias por fecha de creación).
type NameResolver struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewNameResolver construye el resolver por patrón de nombre.
func NewNameResolver(categories repository.CategoryRepository, products repository.ProductRepository) *NameResolver {
	return &NameResolver{categories: categories, products: products}
}

// ResolveCategory obtiene la categoría cuyo nombre empieza por el texto del slug.
func (r *NameResolver) ResolveCategory(ctx context.Context, categorySlug string) (*entity.Category, error) {
	category, err := matchName(ctx, categorySlug, r.categories.FindByNamePattern)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// ResolveCategoryProducts obtiene la categoría y sus productos no borrados.
func (r *NameResolver) ResolveCategoryProducts(ctx context.Context, categorySlug string) (*entity.Category, []*entity.Product, error) {
	category, err := r.ResolveCategory(ctx, categorySlug)
	if err != nil {
		return nil, nil, err
	}
	products, err := resolveProducts(ctx, r.products, category)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}

// ResolveProduct obtiene el producto no borrado cuyo nombre empieza por el texto del slug.
func (r *NameResolver) ResolveProduct(ctx context.Context, categorySlug, productSlug string) (*entity.Product, error) {
	category, err := r.ResolveCategory(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	product, err := matchName(ctx, productSlug, func(ctx context.Context, pattern string) ([]*entity.Product, error) {
		return r.products.FindByCategoryAndNamePattern(ctx, category.ID, pattern)
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// matchName aplica el desempate con dos consultas acotadas: nombre exacto y, si no hay, prefijo.
// En ambos casos gana la primera coincidencia (la más antigua).
func matchName[T any](ctx context.Context, s string, find func(ctx context.Context, pattern string) ([]*T, error)) (*T, error) {
	for _, pattern := range []string{slug.ExactNamePattern(s), slug.NamePattern(s)} {
		matches, err := find(ctx, pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return nil, nil
}
