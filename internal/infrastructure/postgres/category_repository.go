package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id::text, COALESCE(parent_id::text, ''), name, COALESCE(slug, ''), description, is_active, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y le asigna ID.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	var parent *string
	if c.ParentID != "" {
		if !validID(c.ParentID) {
			return domain.ErrInvalidInput
		}
		parent = &c.ParentID
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO categories (id, parent_id, name, slug, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, parent, c.Name, nullIfEmpty(c.Slug), c.Description, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.queryOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, "get category", id)
}

// FindBySlug obtiene la categoría con ese slug exacto.
func (r *CategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.queryOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, "find category by slug", slug)
}

// FindByNamePattern lista las categorías cuyo nombre cumple la expresión regular (~*), por orden de creación.
func (r *CategoryRepo) FindByNamePattern(ctx context.Context, pattern string) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE name ~* $1 ORDER BY created_at, id LIMIT $2`,
		pattern, repository.NameMatchLimit)
	if err != nil {
		return nil, fmt.Errorf("find categories by name: %w", err)
	}
	defer rows.Close()
	list := []*entity.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Ping verifica la conexión.
func (r *CategoryRepo) Ping(ctx context.Context) error {
	var one int
	return r.q.QueryRow(ctx, `SELECT 1`).Scan(&one)
}

func (r *CategoryRepo) queryOne(ctx context.Context, query, op string, args ...any) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.ParentID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
