package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las búsquedas excluyen los productos con borrado lógico salvo GetByID.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	FindByCategoryAndSlug(ctx context.Context, categoryID, slug string) (*entity.Product, error)
	// FindByCategoryAndNamePattern como CategoryRepository.FindByNamePattern dentro de una categoría.
	FindByCategoryAndNamePattern(ctx context.Context, categoryID, pattern string) ([]*entity.Product, error)
	SoftDelete(ctx context.Context, id string) error
}
