package catalog

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ Resolver = (*SlugResolver)(nil)

// SlugResolver resuelve por igualdad exacta contra el slug almacenado.
type SlugResolver struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewSlugResolver construye el resolver por slug exacto.
func NewSlugResolver(categories repository.CategoryRepository, products repository.ProductRepository) *SlugResolver {
	return &SlugResolver{categories: categories, products: products}
}

// ResolveCategory obtiene la categoría cuyo slug coincide exactamente.
func (r *SlugResolver) ResolveCategory(ctx context.Context, categorySlug string) (*entity.Category, error) {
	category, err := r.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// ResolveCategoryProducts obtiene la categoría y sus productos no borrados.
func (r *SlugResolver) ResolveCategoryProducts(ctx context.Context, categorySlug string) (*entity.Category, []*entity.Product, error) {
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

// ResolveProduct obtiene el producto no borrado con ese slug dentro de la categoría.
func (r *SlugResolver) ResolveProduct(ctx context.Context, categorySlug, productSlug string) (*entity.Product, error) {
	category, err := r.ResolveCategory(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	product, err := r.products.FindByCategoryAndSlug(ctx, category.ID, productSlug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}
