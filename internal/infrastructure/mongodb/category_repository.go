package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre MongoDB.
type CategoryRepo struct {
	coll *mongo.Collection
}

// NewCategoryRepository construye el adaptador sobre la colección de categorías.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{coll: db.Collection(CategoriesCollection)}
}

// Create inserta la categoría y completa su ID.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	doc := categoryDocument{
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
	if category.ParentID != "" {
		parent, err := primitive.ObjectIDFromHex(category.ParentID)
		if err != nil {
			return domain.ErrInvalidInput
		}
		doc.Parent = &parent
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = id.Hex()
	}
	return nil
}

// GetByID obtiene una categoría por ID. Un ID con formato inválido equivale a inexistente.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid}, "get category")
}

// FindBySlug obtiene la categoría con ese slug exacto.
func (r *CategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"slug": slug}, "find category by slug")
}

// FindByNamePattern lista las categorías cuyo nombre cumple el patrón, por orden de creación.
func (r *CategoryRepo) FindByNamePattern(ctx context.Context, pattern string) ([]*entity.Category, error) {
	cursor, err := r.coll.Find(ctx, nameFilter(pattern), creationOrder())
	if err != nil {
		return nil, fmt.Errorf("find categories by name: %w", err)
	}
	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// Ping verifica la conexión con el servidor.
func (r *CategoryRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

func (r *CategoryRepo) findOne(ctx context.Context, filter bson.M, op string) (*entity.Category, error) {
	var doc categoryDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toEntity(), nil
}

// nameFilter construye el filtro $regex sin distinguir mayúsculas.
func nameFilter(pattern string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: pattern, Options: "i"}}
}

// creationOrder ordena las coincidencias por nombre de la más antigua a la más nueva, acotadas.
func creationOrder() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(repository.NameMatchLimit)
}
