// seed_catalog carga categorías y productos desde un archivo JSON usando la ruta de escritura
// del catálogo (slugs derivados, duplicados omitidos).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalog.json] [charset]
// Por defecto lee catalog.json del directorio actual en UTF-8. charset admite latin1 y cp1252.
// El almacén se elige con CATALOG_STORE igual que la API. Cualquier fallo termina con código 1.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/infrastructure/store"
	"github.com/jhoicas/catalog-api/pkg/config"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

func main() {
	path := "catalog.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	charset := ""
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := run(cfg, log, path, charset); err != nil {
		log.Error().Err(err).Str("file", path).Msg("seed abortado")
		os.Exit(1)
	}
}

// run ejecuta el seed completo; los defers (cierre del archivo y del almacén) corren antes de salir.
func run(cfg *config.Config, log *logger.Logger, path, charset string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir seed: %w", err)
	}
	defer f.Close()

	seed, err := decodeSeed(f, charset)
	if err != nil {
		return fmt.Errorf("leer seed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("conexión al almacén %q: %w", cfg.Catalog.Store, err)
	}
	defer st.Close(context.Background())

	var result stats
	err = st.RunInTx(ctx, func(cats repository.CategoryRepository, prods repository.ProductRepository) error {
		var loadErr error
		result, loadErr = load(ctx, cats, prods, seed)
		return loadErr
	})
	if err != nil {
		return fmt.Errorf("cargar catálogo (%d categorías, %d productos antes del fallo): %w",
			result.Categories, result.Products, err)
	}

	log.Info().
		Str("store", st.Kind).
		Int("categories", result.Categories).
		Int("products", result.Products).
		Int("deleted", result.Deleted).
		Int("skipped", result.Skipped).
		Msg("seed completado")
	return nil
}
