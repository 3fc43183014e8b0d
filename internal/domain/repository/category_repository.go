package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// NameMatchLimit máximo de coincidencias que devuelven las búsquedas por patrón de nombre.
// Basta para el desempate (nombre exacto o primer creado) sin recorrer la colección entera.
const NameMatchLimit = 10

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencias.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	// FindByNamePattern devuelve las categorías cuyo nombre cumple el patrón (sin distinguir
	// mayúsculas), ordenadas por fecha de creación y como mucho NameMatchLimit.
	FindByNamePattern(ctx context.Context, pattern string) ([]*entity.Category, error)
	Ping(ctx context.Context) error
}
