package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalog-api/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de colecciones del catálogo.
const (
	CategoriesCollection = "categories"
	ProductsCollection   = "products"
)

// Client agrupa el cliente de MongoDB y la base de datos del catálogo.
type Client struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect abre la conexión y verifica con un ping. El timeout de la configuración se aplica
// a la conexión inicial y como timeout por operación del cliente.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return &Client{Client: client, Database: client.Database(cfg.Database)}, nil
}

// Close cierra la conexión.
func (c *Client) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}

// EnsureIndexes crea los índices que garantizan la unicidad de los slugs.
// El slug de categoría es disperso (las categorías antiguas pueden no tenerlo) y el de producto
// solo es único entre los productos no borrados de una misma categoría.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CategoriesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug_unique").SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name"),
		},
	})
	if err != nil {
		return fmt.Errorf("índices de categorías: %w", err)
	}

	_, err = db.Collection(ProductsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "slug", Value: 1}},
			Options: options.Index().
				SetName("category_slug_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"isDeleted": false}),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "isDeleted", Value: 1}},
			Options: options.Index().SetName("category_visible"),
		},
	})
	if err != nil {
		return fmt.Errorf("índices de productos: %w", err)
	}
	return nil
}
