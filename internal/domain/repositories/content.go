package repositories

import (
	"context"

	"chefanton/internal/domain/models"
)

// FetchOrigin tells a caller where the document returned by FetchLatest
// came from. The fallback origins are deliberately distinct: NotConfigured
// and Empty are expected in development, Unreachable and Malformed are
// worth alerting on.
type FetchOrigin string

const (
	OriginStore         FetchOrigin = "store"
	OriginNotConfigured FetchOrigin = "default:not_configured"
	OriginEmpty         FetchOrigin = "default:empty"
	OriginUnreachable   FetchOrigin = "default:unreachable"
	OriginMalformed     FetchOrigin = "default:malformed"
)

// Fallback reports whether the returned document was the compiled-in
// default rather than a stored version.
func (o FetchOrigin) Fallback() bool { return o != OriginStore }

// ContentRepository persists the site's content document append-only:
// every publish inserts a complete new version, and reads return the
// newest one.
type ContentRepository interface {
	// FetchLatest returns the most recently published document, migrated to
	// the current schema version. It never fails outward: any store problem
	// resolves to the default document with a non-store origin. Content
	// availability takes priority over surfacing storage errors.
	FetchLatest(ctx context.Context) (models.ContentDocument, FetchOrigin)

	// Publish stamps the current schema version on doc and appends it as a
	// new row in a single insert, so concurrent readers always observe a
	// complete document. Returns ErrStoreUnavailable when no store is
	// configured or the insert fails.
	Publish(ctx context.Context, doc models.ContentDocument) error

	// ClearAll deletes every persisted version, resetting FetchLatest to
	// the default document. Silent no-op when no store is configured.
	ClearAll(ctx context.Context) error
}
