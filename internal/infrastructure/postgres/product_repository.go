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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id::text, category_id::text, name, COALESCE(slug, ''), description, price, is_deleted, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y le asigna ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if !validID(p.CategoryID) {
		return domain.ErrInvalidInput
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, category_id, name, slug, description, price, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.CategoryID, p.Name, nullIfEmpty(p.Slug), p.Description, p.Price, p.IsDeleted, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, incluidos los borrados.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.queryOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, "get product", id)
}

// FindByCategory lista los productos visibles de la categoría (orden del almacén).
func (r *ProductRepo) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	if !validID(categoryID) {
		return []*entity.Product{}, nil
	}
	return r.queryMany(ctx,
		`SELECT `+productColumns+` FROM products WHERE category_id = $1 AND NOT is_deleted`,
		"find products by category", categoryID)
}

// FindByCategoryAndSlug obtiene el producto visible con ese slug dentro de la categoría.
func (r *ProductRepo) FindByCategoryAndSlug(ctx context.Context, categoryID, slug string) (*entity.Product, error) {
	if !validID(categoryID) {
		return nil, nil
	}
	return r.queryOne(ctx,
		`SELECT `+productColumns+` FROM products WHERE category_id = $1 AND slug = $2 AND NOT is_deleted`,
		"find product by slug", categoryID, slug)
}

// FindByCategoryAndNamePattern lista los productos visibles cuyo nombre cumple el patrón, por orden de creación.
func (r *ProductRepo) FindByCategoryAndNamePattern(ctx context.Context, categoryID, pattern string) ([]*entity.Product, error) {
	if !validID(categoryID) {
		return []*entity.Product{}, nil
	}
	return r.queryMany(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE category_id = $1 AND name ~* $2 AND NOT is_deleted
		 ORDER BY created_at, id
		 LIMIT $3`,
		"find products by name", categoryID, pattern, repository.NameMatchLimit)
}

// SoftDelete marca el producto como borrado.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrProductNotFound
	}
	cmd, err := r.q.Exec(ctx, `UPDATE products SET is_deleted = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) queryOne(ctx context.Context, query, op string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r *ProductRepo) queryMany(ctx context.Context, query, op string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
