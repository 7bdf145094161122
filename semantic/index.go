// Copyright 2025 Pantry Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package semantic

import (
	"context"
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores/pinecone"

	"github.com/pantrylabs/foodsearch/ai"
	"github.com/pantrylabs/foodsearch/core"
)

const (
	// DefaultTopK is the number of matches a query returns when the caller
	// does not specify one.
	DefaultTopK = 10

	upsertBatchSize  = 100
	upsertBatchDelay = 500 * time.Millisecond

	textKey              = "full_path"
	metadataCategoryID   = "category_id"
	metadataCategoryName = "category_name"
)

// Category is one leaf of the product taxonomy: its own name and the full
// path from the root ("Food > Pasta > Instant noodles").
type Category struct {
	Name     string
	FullPath string
}

// Index is the semantic retrieval backend. It embeds category paths and
// queries with the configured embedder and matches them in a Pinecone index.
type Index struct {
	store      pinecone.Store
	logger     *slog.Logger
	batchDelay time.Duration
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets the logger used for index operations.
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) error {
		ix.logger = logger
		return nil
	}
}

// WithBatchDelay sets the pause between upsert batches. Zero disables it.
func WithBatchDelay(d time.Duration) Option {
	return func(ix *Index) error {
		ix.batchDelay = d
		return nil
	}
}

// NewIndex connects to a Pinecone index. The embedder must produce vectors of
// the dimension the index was created with; namespace may be empty for the
// default namespace.
func NewIndex(embedder ai.Embedder, apiKey, host, namespace string, opts ...Option) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if apiKey == "" || host == "" {
		return nil, ErrMissingCredentials
	}

	store, err := pinecone.New(
		pinecone.WithAPIKey(apiKey),
		pinecone.WithHost(host),
		pinecone.WithNameSpace(namespace),
		pinecone.WithEmbedder(&storeEmbedder{inner: embedder}),
		pinecone.WithTextKey(textKey),
	)
	if err != nil {
		return nil, err
	}

	ix := &Index{
		store:      store,
		logger:     slog.Default().With("component", "semantic-index"),
		batchDelay: upsertBatchDelay,
	}
	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// Query embeds the raw query text and returns the topK most similar
// categories. topK values below 1 fall back to DefaultTopK.
func (ix *Index) Query(ctx context.Context, query string, topK int) ([]core.SemanticHit, error) {
	if topK < 1 {
		topK = DefaultTopK
	}

	docs, err := ix.store.SimilaritySearch(ctx, query, topK)
	if err != nil {
		ix.logger.Error("similarity search failed", "err", err)
		return nil, err
	}

	hits := make([]core.SemanticHit, 0, len(docs))
	for _, doc := range docs {
		hits = append(hits, hitFromDocument(doc))
	}

	ix.logger.Debug("semantic query complete", "top_k", topK, "hits", len(hits))
	return hits, nil
}

// Upsert embeds the given categories and writes them to the index in batches.
// Categories whose name sanitizes to an empty ID are skipped with a warning;
// the rest are still written. Returns the number of vectors upserted.
func (ix *Index) Upsert(ctx context.Context, categories []Category) (int, error) {
	docs := make([]schema.Document, 0, len(categories))
	for _, cat := range categories {
		id := SanitizeID(cat.Name)
		if id == "" {
			ix.logger.Warn("skipping category with empty vector ID", "name", cat.Name)
			continue
		}
		docs = append(docs, schema.Document{
			PageContent: cat.FullPath,
			Metadata: map[string]any{
				metadataCategoryID:   id,
				metadataCategoryName: cat.Name,
			},
		})
	}

	for start := 0; start < len(docs); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(docs) {
			end = len(docs)
		}

		if _, err := ix.store.AddDocuments(ctx, docs[start:end]); err != nil {
			ix.logger.Error("upsert batch failed", "from", start, "to", end, "err", err)
			return start, err
		}
		ix.logger.Debug("upserted batch", "from", start, "to", end)

		// Pause between batches to stay under the write rate limit.
		if end < len(docs) && ix.batchDelay > 0 {
			select {
			case <-ctx.Done():
				return end, ctx.Err()
			case <-time.After(ix.batchDelay):
			}
		}
	}

	ix.logger.Info("category upsert complete",
		"requested", len(categories), "written", len(docs))
	return len(docs), nil
}

// hitFromDocument maps a store document onto a SemanticHit. The vector ID and
// display name come from metadata; hits written by other tooling may lack
// them, in which case both derive from the path text.
func hitFromDocument(doc schema.Document) core.SemanticHit {
	hit := core.SemanticHit{
		Score:    doc.Score,
		Text:     doc.PageContent,
		Metadata: doc.Metadata,
	}

	if id, ok := doc.Metadata[metadataCategoryID].(string); ok && id != "" {
		hit.ID = id
	} else {
		hit.ID = SanitizeID(doc.PageContent)
	}

	if name, ok := doc.Metadata[metadataCategoryName].(string); ok && name != "" {
		hit.GivenName = name
	} else {
		hit.GivenName = DisplayName(hit.ID)
	}

	return hit
}
