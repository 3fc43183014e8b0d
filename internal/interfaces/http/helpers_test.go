package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	apphttp "github.com/jhoicas/catalog-api/internal/interfaces/http"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por categorías y productos
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	categories []*entity.Category
	products   []*entity.Product
	err        error
}

type memCategories struct{ *memStore }
type memProducts struct{ *memStore }

func (s memCategories) Create(_ context.Context, c *entity.Category) error {
	if s.err != nil {
		return s.err
	}
	c.ID = fmt.Sprintf("cat-%d", len(s.categories)+1)
	s.categories = append(s.categories, c)
	return nil
}

func (s memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s memCategories) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
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

func (s memCategories) FindByNamePattern(_ context.Context, pattern string) ([]*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	re := regexp.MustCompile("(?i)" + pattern)
	var out []*entity.Category
	for _, c := range s.categories {
		if re.MatchString(c.Name) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s memCategories) Ping(context.Context) error { return s.err }

func (s memProducts) Create(_ context.Context, p *entity.Product) error {
	if s.err != nil {
		return s.err
	}
	p.ID = fmt.Sprintf("p-%d", len(s.products)+1)
	s.products = append(s.products, p)
	return nil
}

func (s memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, s.err
		}
	}
	return nil, s.err
}

func (s memProducts) visible(categoryID string, match func(*entity.Product) bool) []*entity.Product {
	out := []*entity.Product{}
	for _, p := range s.products {
		if p.CategoryID == categoryID && !p.IsDeleted && match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s memProducts) FindByCategory(_ context.Context, categoryID string) ([]*entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.visible(categoryID, func(*entity.Product) bool { return true }), nil
}

func (s memProducts) FindByCategoryAndSlug(_ context.Context, categoryID, slug string) (*entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	list := s.visible(categoryID, func(p *entity.Product) bool { return p.Slug == slug })
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s memProducts) FindByCategoryAndNamePattern(_ context.Context, categoryID, pattern string) ([]*entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	re := regexp.MustCompile("(?i)" + pattern)
	return s.visible(categoryID, func(p *entity.Product) bool { return re.MatchString(p.Name) }), nil
}

func (s memProducts) SoftDelete(_ context.Context, id string) error {
	for _, p := range s.products {
		if p.ID == id {
			p.IsDeleted = true
		}
	}
	return s.err
}

// homeGoodsStore escenario base: "Home Goods" con "Lamp" visible y "Old Lamp" borrado.
func homeGoodsStore() *memStore {
	return &memStore{
		categories: []*entity.Category{{ID: "cat-1", Name: "Home Goods", Slug: "home-goods", IsActive: true}},
		products: []*entity.Product{
			{ID: "p-1", CategoryID: "cat-1", Name: "Lamp", Slug: "lamp"},
			{ID: "p-2", CategoryID: "cat-1", Name: "Old Lamp", Slug: "old-lamp", IsDeleted: true},
		},
	}
}

// newTestApp arma la app completa con el router real sobre el almacén en memoria.
func newTestApp(t *testing.T, store *memStore, mode string) *fiber.App {
	t.Helper()
	categories, products := memCategories{store}, memProducts{store}
	resolver, err := catalog.NewResolver(mode, categories, products)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Resolver:    resolver,
		CategoryUC:  usecase.NewCategoryUseCase(categories),
		ProductUC:   usecase.NewProductUseCase(products, categories),
		Store:       categories,
		ServiceName: "catalog-api-test",
		JWTSecret:   testJWTSecret,
		Log:         logger.Nop(),
	})
	return app
}

// do lanza la petición y decodifica el cuerpo JSON (si lo hay) en un mapa.
func do(t *testing.T, app *fiber.App, method, path, auth string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && resp.Header.Get("Content-Type") == fiber.MIMEApplicationJSON {
		require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	}
	return resp.StatusCode, out
}
