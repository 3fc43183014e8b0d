package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/domain/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type seedFile struct {
	Categories []seedCategory `json:"categories"`
}

type seedCategory struct {
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Products    []seedProduct `json:"products"`
}

type seedProduct struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Deleted     bool            `json:"deleted"`
}

type stats struct {
	Categories, Products, Skipped, Deleted int
}

// decodeSeed lee el archivo JSON. Los exportes de hojas de cálculo suelen venir en ISO-8859-1.
func decodeSeed(r io.Reader, charset string) (*seedFile, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
	case "iso-8859-1", "iso8859-1", "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
	var f seedFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decodificar JSON: %w", err)
	}
	return &f, nil
}

// load inserta el contenido a través de la ruta de escritura. Los slugs visibles ya existentes se
// omiten, así que volver a ejecutar el seed no duplica categorías ni productos publicados.
func load(ctx context.Context, cats repository.CategoryRepository, prods repository.ProductRepository, f *seedFile) (stats, error) {
	var st stats
	categoryUC := usecase.NewCategoryUseCase(cats)
	productUC := usecase.NewProductUseCase(prods, cats)

	for _, sc := range f.Categories {
		categoryID, err := ensureCategory(ctx, categoryUC, cats, sc, &st)
		if err != nil {
			return st, err
		}
		for _, sp := range sc.Products {
			p, err := productUC.Create(ctx, dto.CreateProductRequest{
				CategoryID:  categoryID,
				Name:        sp.Name,
				Slug:        sp.Slug,
				Description: sp.Description,
				Price:       sp.Price,
			})
			if errors.Is(err, domain.ErrDuplicate) {
				st.Skipped++
				continue
			}
			if err != nil {
				return st, fmt.Errorf("producto %q: %w", sp.Name, err)
			}
			st.Products++
			if sp.Deleted {
				if err := productUC.Delete(ctx, p.ID); err != nil {
					return st, fmt.Errorf("borrar producto %q: %w", sp.Name, err)
				}
				st.Deleted++
			}
		}
	}
	return st, nil
}

func ensureCategory(ctx context.Context, uc *usecase.CategoryUseCase, cats repository.CategoryRepository, sc seedCategory, st *stats) (string, error) {
	c, err := uc.Create(ctx, dto.CreateCategoryRequest{
		Name:        sc.Name,
		Slug:        sc.Slug,
		Description: sc.Description,
	})
	if err == nil {
		st.Categories++
		return c.ID, nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return "", fmt.Errorf("categoría %q: %w", sc.Name, err)
	}
	st.Skipped++
	s := sc.Slug
	if s == "" {
		s = sc.Name
	}
	existing, err := cats.FindBySlug(ctx, slug.Generate(s))
	if err != nil {
		return "", fmt.Errorf("categoría %q: %w", sc.Name, err)
	}
	if existing == nil {
		return "", fmt.Errorf("categoría %q: %w", sc.Name, domain.ErrCategoryNotFound)
	}
	return existing.ID, nil
}
