package catalog_test

import (
	"context"
	"errors"
	"regexp"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// fakeStore implementa CategoryRepository y ProductRepository en memoria.
type fakeStore struct {
	categories []*entity.Category
	products   []*entity.Product
	err        error
	calls      int
	patterns   []string
}

var errStore = errors.New("connection refused")

func (s *fakeStore) Create(ctx context.Context, c *entity.Category) error {
	s.categories = append(s.categories, c)
	return s.err
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	s.calls++
	for _, c := range s.categories {
		if c.ID == id {
			return c, s.err
		}
	}
	return nil, s.err
}

func (s *fakeStore) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindByNamePattern(ctx context.Context, pattern string) ([]*entity.Category, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	s.patterns = append(s.patterns, pattern)
	re := regexp.MustCompile("(?i)" + pattern)
	var out []*entity.Category
	for _, c := range s.categories {
		if re.MatchString(c.Name) && len(out) < repository.NameMatchLimit {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeStore) Ping(ctx context.Context) error { return s.err }

// fakeProducts comparte el estado con fakeStore.
type fakeProducts struct{ *fakeStore }

func (p fakeProducts) Create(ctx context.Context, pr *entity.Product) error {
	p.products = append(p.products, pr)
	return p.err
}

func (p fakeProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, pr := range p.products {
		if pr.ID == id {
			return pr, p.err
		}
	}
	return nil, p.err
}

func (p fakeProducts) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	var out []*entity.Product
	for _, pr := range p.products {
		if pr.CategoryID == categoryID && !pr.IsDeleted {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (p fakeProducts) FindByCategoryAndSlug(ctx context.Context, categoryID, slug string) (*entity.Product, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	for _, pr := range p.products {
		if pr.CategoryID == categoryID && pr.Slug == slug && !pr.IsDeleted {
			return pr, nil
		}
	}
	return nil, nil
}

func (p fakeProducts) FindByCategoryAndNamePattern(ctx context.Context, categoryID, pattern string) ([]*entity.Product, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	p.patterns = append(p.patterns, pattern)
	re := regexp.MustCompile("(?i)" + pattern)
	var out []*entity.Product
	for _, pr := range p.products {
		if pr.CategoryID == categoryID && !pr.IsDeleted && re.MatchString(pr.Name) && len(out) < repository.NameMatchLimit {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (p fakeProducts) SoftDelete(ctx context.Context, id string) error {
	for _, pr := range p.products {
		if pr.ID == id {
			pr.IsDeleted = true
		}
	}
	return p.err
}

// homeGoods arma el escenario base: una categoría con un producto visible y uno borrado.
func homeGoods() *fakeStore {
	return &fakeStore{
		categories: []*entity.Category{
			{ID: "cat-1", Name: "Home Goods", Slug: "home-goods"},
			{ID: "cat-2", Name: "Garden", Slug: "garden"},
		},
		products: []*entity.Product{
			{ID: "p-1", CategoryID: "cat-1", Name: "Lamp", Slug: "lamp"},
			{ID: "p-2", CategoryID: "cat-1", Name: "Old Lamp", Slug: "old-lamp", IsDeleted: true},
			{ID: "p-3", CategoryID: "cat-2", Name: "Shovel", Slug: "shovel"},
		},
	}
}
