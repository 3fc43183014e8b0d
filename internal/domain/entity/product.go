package entity

import (
	"time"

	"github.com/jhoicas/catalog-api/internal/domain/slug"
	"github.com/shopspring/decimal"
)

// Product representa un producto publicado en el catálogo.
// IsDeleted es un borrado lógico: los productos borrados no son visibles en las consultas por slug.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Slug        string // único por categoría
	Description string
	Price       decimal.Decimal
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EnsureSlug deriva el slug desde el nombre si no viene informado y normaliza uno explícito.
// Se invoca antes de cada inserción.
func (p *Product) EnsureSlug() *Product {
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Name)
	} else {
		p.Slug = slug.Generate(p.Slug)
	}
	return p
}
