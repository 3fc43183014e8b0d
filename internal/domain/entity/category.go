package entity

import (
	"time"

	"github.com/jhoicas/catalog-api/internal/domain/slug"
)

// Category representa una categoría del catálogo (jerárquica opcional).
type Category struct {
	ID          string
	ParentID    string // vacío si es raíz
	Name        string
	Slug        string // único en el catálogo
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EnsureSlug deriva el slug desde el nombre si no viene informado y normaliza uno explícito.
// Se invoca antes de cada inserción.
func (c *Category) EnsureSlug() *Category {
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	} else {
		c.Slug = slug.Generate(c.Slug)
	}
	return c
}
