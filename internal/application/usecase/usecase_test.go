package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCategories struct{ items []*entity.Category }

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	c.ID = fmt.Sprintf("cat-%d", len(m.items)+1)
	m.items = append(m.items, c)
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategories) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	for _, c := range m.items {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategories) FindByNamePattern(context.Context, string) ([]*entity.Category, error) {
	return nil, nil
}

func (m *memCategories) Ping(context.Context) error { return nil }

type memProducts struct{ items []*entity.Product }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	p.ID = fmt.Sprintf("p-%d", len(m.items)+1)
	m.items = append(m.items, p)
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) FindByCategory(_ context.Context, categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.items {
		if p.CategoryID == categoryID && !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) FindByCategoryAndSlug(_ context.Context, categoryID, slug string) (*entity.Product, error) {
	for _, p := range m.items {
		if p.CategoryID == categoryID && p.Slug == slug && !p.IsDeleted {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) FindByCategoryAndNamePattern(context.Context, string, string) ([]*entity.Product, error) {
	return nil, nil
}

func (m *memProducts) SoftDelete(_ context.Context, id string) error {
	for _, p := range m.items {
		if p.ID == id {
			p.IsDeleted = true
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryUseCase_Create_DerivaSlug(t *testing.T) {
	repo := &memCategories{}
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Home Goods"})
	require.NoError(t, err)
	assert.Equal(t, "home-goods", out.Slug)
	assert.True(t, out.IsActive, "las categorías nacen activas")
	assert.NotEmpty(t, out.ID)
}

func TestCategoryUseCase_Create_NormalizaSlugExplicito(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&memCategories{})

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Home Goods", Slug: "Casa Hogar"})
	require.NoError(t, err)
	assert.Equal(t, "casa-hogar", out.Slug)
}

func TestCategoryUseCase_Create_Errores(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&memCategories{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "***"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un nombre sin caracteres válidos no produce slug")

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Home Goods"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "home goods!"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Lamps", ParentID: "nope"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryUseCase_Create_LongitudDelNombre(t *testing.T) {
	repo := &memCategories{}
	uc := usecase.NewCategoryUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: strings.Repeat("a", usecase.MaxNameLength+1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.items)

	// El límite cuenta caracteres, no bytes.
	out, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: strings.Repeat("é", usecase.MaxNameLength)})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("e", usecase.MaxNameLength), out.Slug)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_CreateYDelete(t *testing.T) {
	categories := &memCategories{}
	products := &memProducts{}
	ctx := context.Background()

	cat, err := usecase.NewCategoryUseCase(categories).Create(ctx, dto.CreateCategoryRequest{Name: "Home Goods"})
	require.NoError(t, err)

	uc := usecase.NewProductUseCase(products, categories)
	out, err := uc.Create(ctx, dto.CreateProductRequest{CategoryID: cat.ID, Name: "Lamp", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)
	assert.Equal(t, "lamp", out.Slug)
	assert.False(t, out.IsDeleted)

	_, err = uc.Create(ctx, dto.CreateProductRequest{CategoryID: cat.ID, Name: "LAMP"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, uc.Delete(ctx, out.ID))
	assert.True(t, products.items[0].IsDeleted)
	assert.ErrorIs(t, uc.Delete(ctx, out.ID), domain.ErrProductNotFound, "borrar dos veces")

	// Tras el borrado lógico el slug queda libre.
	_, err = uc.Create(ctx, dto.CreateProductRequest{CategoryID: cat.ID, Name: "Lamp"})
	assert.NoError(t, err)
}

func TestProductUseCase_Create_Errores(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProducts{}, &memCategories{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{CategoryID: "nope", Name: "Lamp"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = uc.Create(ctx, dto.CreateProductRequest{CategoryID: "nope", Name: "Lamp", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.ErrorIs(t, uc.Delete(ctx, "nope"), domain.ErrProductNotFound)

	_, err = uc.Create(ctx, dto.CreateProductRequest{CategoryID: "nope", Name: strings.Repeat("x", usecase.MaxNameLength+1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "se valida antes de consultar la categoría")
}
