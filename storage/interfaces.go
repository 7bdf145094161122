package storage

import (
	"context"

	"github.com/pantrylabs/foodsearch/core"
)

// ProductRepository provides access to the product catalog and its full-text
// search backend. Implementations must be safe for concurrent use.
type ProductRepository interface {
	// TextSearch runs a full-text query using the formatted (normalized)
	// query string. Results carry the backend's relevance score in TextScore
	// and arrive pre-sorted descending by it, up to limit records.
	// A query the backend rejects as malformed is reported as an error
	// wrapping ErrQueryRejected so callers can degrade instead of aborting.
	TextSearch(ctx context.Context, formatted string, limit int) ([]*core.Product, error)

	// InsertProducts adds products to the catalog.
	// Records failing validation are rejected as a whole batch.
	InsertProducts(ctx context.Context, products ...*core.Product) error

	// EnsureSearchIndex creates the full-text index over the search blob
	// field if it does not exist yet. Idempotent.
	EnsureSearchIndex(ctx context.Context) error

	// Count returns the number of products in the catalog.
	Count(ctx context.Context) (int64, error)

	// Close releases the backend connection.
	Close(ctx context.Context) error
}

// VectorCache stores embedding vectors keyed by content ID, so re-ingesting
// an unchanged catalog does not re-embed every category path.
type VectorCache interface {
	// Get retrieves a cached entry. Returns ErrNotFound on a miss.
	Get(ctx context.Context, id core.ID) (*core.VectorEntry, error)

	// Put stores an entry under the given content ID, replacing any
	// previous value.
	Put(ctx context.Context, id core.ID, entry *core.VectorEntry) error

	// Close closes the cache.
	Close() error
}
