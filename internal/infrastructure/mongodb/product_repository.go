package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador sobre la colección de productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(ProductsCollection)}
}

// Create inserta el producto y completa su ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	category, err := primitive.ObjectIDFromHex(product.CategoryID)
	if err != nil {
		return domain.ErrInvalidInput
	}
	price, err := toDecimal128(product.Price)
	if err != nil {
		return domain.ErrInvalidInput
	}
	doc := productDocument{
		Category:    category,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Price:       price,
		IsDeleted:   product.IsDeleted,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id.Hex()
	}
	return nil
}

// GetByID obtiene un producto por ID, incluidos los borrados.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid}, "get product")
}

// FindByCategory lista los productos visibles de la categoría en el orden natural de la colección.
func (r *ProductRepo) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	filter, ok := visibleIn(categoryID)
	if !ok {
		return []*entity.Product{}, nil
	}
	return r.find(ctx, filter, "find products by category")
}

// FindByCategoryAndSlug obtiene el producto visible con ese slug dentro de la categoría.
func (r *ProductRepo) FindByCategoryAndSlug(ctx context.Context, categoryID, slug string) (*entity.Product, error) {
	filter, ok := visibleIn(categoryID)
	if !ok {
		return nil, nil
	}
	filter["slug"] = slug
	return r.findOne(ctx, filter, "find product by slug")
}

// FindByCategoryAndNamePattern lista los productos visibles cuyo nombre cumple el patrón, por orden de creación.
func (r *ProductRepo) FindByCategoryAndNamePattern(ctx context.Context, categoryID, pattern string) ([]*entity.Product, error) {
	filter, ok := visibleIn(categoryID)
	if !ok {
		return []*entity.Product{}, nil
	}
	filter["name"] = nameFilter(pattern)["name"]
	return r.find(ctx, filter, "find products by name", creationOrder())
}

// SoftDelete marca el producto como borrado.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// visibleIn filtro base: productos no borrados de la categoría.
func visibleIn(categoryID string) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, false
	}
	return bson.M{"category": oid, "isDeleted": false}, true
}

func (r *ProductRepo) findOne(ctx context.Context, filter bson.M, op string) (*entity.Product, error) {
	var doc productDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toEntity(), nil
}

func (r *ProductRepo) find(ctx context.Context, filter bson.M, op string, opts ...*options.FindOptions) ([]*entity.Product, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}
