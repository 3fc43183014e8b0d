package mongodb

import (
	"time"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// categoryDocument forma almacenada de una categoría.
type categoryDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Parent      *primitive.ObjectID `bson:"parent,omitempty"`
	Name        string              `bson:"name"`
	Slug        string              `bson:"slug,omitempty"`
	Description string              `bson:"description,omitempty"`
	IsActive    bool                `bson:"isActive"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

// productDocument forma almacenada de un producto.
type productDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Category    primitive.ObjectID   `bson:"category"`
	Name        string               `bson:"name"`
	Slug        string               `bson:"slug,omitempty"`
	Description string               `bson:"description,omitempty"`
	Price       primitive.Decimal128 `bson:"price"`
	IsDeleted   bool                 `bson:"isDeleted"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func (d *categoryDocument) toEntity() *entity.Category {
	c := &entity.Category{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Parent != nil {
		c.ParentID = d.Parent.Hex()
	}
	return c
}

func (d *productDocument) toEntity() *entity.Product {
	return &entity.Product{
		ID:          d.ID.Hex(),
		CategoryID:  d.Category.Hex(),
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		Price:       fromDecimal128(d.Price),
		IsDeleted:   d.IsDeleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func fromDecimal128(d primitive.Decimal128) decimal.Decimal {
	v, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Zero
	}
	return v
}
