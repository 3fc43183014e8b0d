package dto

import "github.com/jhoicas/catalog-api/internal/domain/entity"

// NewCategoryResponse convierte la entidad en su representación JSON.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewProductResponse convierte la entidad en su representación JSON.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewSlugCategoryResponse arma la respuesta de categoría con sus productos ([] si no hay).
func NewSlugCategoryResponse(c *entity.Category, products []*entity.Product) SlugCategoryResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return SlugCategoryResponse{Category: NewCategoryResponse(c), Products: items}
}
