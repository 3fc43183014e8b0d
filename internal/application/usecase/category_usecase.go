package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/slug"
)

// MaxNameLength longitud máxima (en caracteres) del nombre de categorías y productos.
const MaxNameLength = 200

func validName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n > 0 && n <= MaxNameLength
}

// CategoryUseCase ruta de escritura de categorías. El slug se asigna aquí, nunca en la lectura.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Devuelve ErrInvalidInput si el nombre está vacío, supera
// MaxNameLength o no produce un slug, y ErrDuplicate si el slug ya existe.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !validName(in.Name) {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrCategoryNotFound
		}
	}
	now := time.Now().UTC()
	category := (&entity.Category{
		ParentID:    in.ParentID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).EnsureSlug()
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if !slug.Valid(category.Slug) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindBySlug(ctx, category.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(category)
	return &out, nil
}
