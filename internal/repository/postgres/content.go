package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"chefanton/internal/domain"
	"chefanton/internal/domain/models"
	"chefanton/internal/domain/repositories"
)

// PostgresContentRepository implements the ContentRepository interface over
// an append-only site_content table (id bigserial, version text, document
// jsonb, created_at). The newest row is authoritative.
type PostgresContentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewContentRepository creates a new content repository. A nil pool is
// valid and means no store is configured.
func NewContentRepository(config *RepositoryConfig) repositories.ContentRepository {
	return &PostgresContentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// FetchLatest returns the newest published document, or the compiled-in
// default when the store is unconfigured, empty, unreachable, or holds a
// malformed row. Store errors are logged here and never propagate: the
// public site must always have a complete document to render.
func (r *PostgresContentRepository) FetchLatest(ctx context.Context) (models.ContentDocument, repositories.FetchOrigin) {
	if r.pool == nil {
		r.logger.Debug("content store not configured, serving default document")
		return models.DefaultDocument(), repositories.OriginNotConfigured
	}

	query := fmt.Sprintf(`
		SELECT document FROM %s
		ORDER BY id DESC
		LIMIT 1
	`, r.tables.SiteContent)

	var raw []byte
	err := r.pool.QueryRow(ctx, query).Scan(&raw)
	if err != nil {
		if IsPgNoRowsError(err) {
			r.logger.Info("content store empty, serving default document")
			return models.DefaultDocument(), repositories.OriginEmpty
		}
		r.logger.Error("content store unreachable, serving default document", "error", err)
		return models.DefaultDocument(), repositories.OriginUnreachable
	}

	doc, err := DecodeDocument(raw)
	if err != nil {
		r.logger.Error("stored document malformed, serving default document", "error", err)
		return models.DefaultDocument(), repositories.OriginMalformed
	}

	return doc, repositories.OriginStore
}

// Publish stamps the current schema version and appends the document as a
// new row. The whole payload goes in one insert so a concurrent FetchLatest
// can never observe a partially written document.
func (r *PostgresContentRepository) Publish(ctx context.Context, doc models.ContentDocument) error {
	if r.pool == nil {
		return fmt.Errorf("no content store configured: %w", domain.ErrStoreUnavailable)
	}

	doc.Version = models.SchemaVersion
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%w: refusing to publish incomplete document: %v", domain.ErrValidation, err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (version, document)
		VALUES ($1, $2)
	`, r.tables.SiteContent)

	if _, err := r.pool.Exec(ctx, query, doc.Version, payload); err != nil {
		return fmt.Errorf("publish document: %w: %w", domain.ErrStoreUnavailable, err)
	}

	r.logger.Info("document published", "schema_version", doc.Version, "bytes", len(payload))
	return nil
}

// ClearAll deletes every persisted version. No-op when no store is
// configured.
func (r *PostgresContentRepository) ClearAll(ctx context.Context) error {
	if r.pool == nil {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM %s`, r.tables.SiteContent)
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("clear content store: %w", err)
	}

	r.logger.Info("content store cleared")
	return nil
}
