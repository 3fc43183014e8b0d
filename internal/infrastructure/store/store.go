// Package store abre el almacén del catálogo seleccionado por CATALOG_STORE.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-api/pkg/config"
)

// TxFunc recibe repos atados a la transacción en curso (si el almacén la soporta).
type TxFunc func(categories repository.CategoryRepository, products repository.ProductRepository) error

// Store repos del catálogo más el cierre de la conexión subyacente.
type Store struct {
	Kind       string
	Categories repository.CategoryRepository
	Products   repository.ProductRepository

	runInTx func(ctx context.Context, fn TxFunc) error
	close   func(ctx context.Context) error
}

// Open conecta con MongoDB o PostgreSQL y prepara índices/esquema.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Catalog.Store {
	case config.StoreMongo:
		return openMongo(ctx, cfg.Mongo)
	case config.StorePostgres:
		return openPostgres(ctx, cfg.DB)
	default:
		return nil, fmt.Errorf("almacén desconocido: %q", cfg.Catalog.Store)
	}
}

func openMongo(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := mongodb.EnsureIndexes(ctx, client.Database); err != nil {
		_ = client.Close(ctx)
		return nil, err
	}
	s := &Store{
		Kind:       config.StoreMongo,
		Categories: mongodb.NewCategoryRepository(client.Database),
		Products:   mongodb.NewProductRepository(client.Database),
		close:      client.Close,
	}
	// Sin transacciones: un despliegue standalone de MongoDB no las soporta.
	s.runInTx = func(_ context.Context, fn TxFunc) error {
		return fn(s.Categories, s.Products)
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	tx := postgres.NewTxRunner(pool)
	return &Store{
		Kind:       config.StorePostgres,
		Categories: postgres.NewCategoryRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		runInTx: func(ctx context.Context, fn TxFunc) error {
			return tx.Run(ctx, fn)
		},
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}

// RunInTx ejecuta fn de forma atómica cuando el almacén lo permite.
func (s *Store) RunInTx(ctx context.Context, fn TxFunc) error {
	return s.runInTx(ctx, fn)
}

// Close libera la conexión.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}
