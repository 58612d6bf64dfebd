// Command seed resets the content store to the compiled-in default
// document: it creates the site_content table if needed, clears every
// stored version, and publishes the default as version one.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"chefanton/internal/config"
	"chefanton/internal/domain/models"
	"chefanton/internal/repository/postgres"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.SupabaseDBURL == "" {
		log.Fatal("SUPABASE_DB_URL is required to seed")
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	// The whole document lives in one jsonb column; each publish is one
	// new row and the highest id wins on read.
	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         bigserial PRIMARY KEY,
			version    text        NOT NULL,
			document   jsonb       NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)
	`, tables.SiteContent)
	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	repo := postgres.NewContentRepository(&postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	})

	if err := repo.ClearAll(ctx); err != nil {
		log.Fatalf("Failed to clear content store: %v", err)
	}
	if err := repo.Publish(ctx, models.DefaultDocument()); err != nil {
		log.Fatalf("Failed to publish default document: %v", err)
	}

	logger.Info("seeded content store", "table", tables.SiteContent, "schema_version", models.SchemaVersion)
}
