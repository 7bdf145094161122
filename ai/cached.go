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


package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/storage"
)

// CachedEmbedder decorates an Embedder with a persistent vector cache. Texts
// are keyed by their content hash; a cached vector is reused only when it was
// produced by the same model, so switching models invalidates transparently.
//
// Cache failures are never fatal: a read error falls through to the inner
// embedder, a write error is logged and the vector still returned.
type CachedEmbedder struct {
	inner  Embedder
	cache  storage.VectorCache
	model  string
	logger *slog.Logger
}

var _ Embedder = (*CachedEmbedder)(nil)

// NewCachedEmbedder wraps inner with the given cache. The model identifier is
// stored alongside each vector and checked on retrieval.
func NewCachedEmbedder(inner Embedder, cache storage.VectorCache, model string) (*CachedEmbedder, error) {
	if inner == nil {
		return nil, errors.New("cached embedder: inner embedder required")
	}
	if cache == nil {
		return nil, errors.New("cached embedder: vector cache required")
	}
	return &CachedEmbedder{
		inner:  inner,
		cache:  cache,
		model:  model,
		logger: slog.Default().With("component", "cached-embedder"),
	}, nil
}

// EmbedText returns the cached vector for text when present, otherwise
// delegates to the inner embedder and stores the result.
func (c *CachedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	id := core.IDFromContent(text)

	if vec, ok := c.lookup(ctx, id); ok {
		return vec, nil
	}

	vec, err := c.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	c.store(ctx, id, vec)
	return vec, nil
}

// EmbedTexts resolves each text through the cache and batches only the misses
// through the inner embedder, preserving input order in the result.
func (c *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	results := make([][]float32, len(texts))
	ids := make([]core.ID, len(texts))

	var missing []int
	for i, text := range texts {
		ids[i] = core.IDFromContent(text)
		if vec, ok := c.lookup(ctx, ids[i]); ok {
			results[i] = vec
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) == 0 {
		return results, nil
	}

	batch := make([]string, len(missing))
	for j, i := range missing {
		batch[j] = texts[i]
	}

	vectors, err := c.inner.EmbedTexts(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(batch) {
		return nil, errors.New("cached embedder: embedder returned wrong vector count")
	}

	for j, i := range missing {
		results[i] = vectors[j]
		c.store(ctx, ids[i], vectors[j])
	}

	c.logger.Debug("resolved embeddings",
		"total", len(texts),
		"cached", len(texts)-len(missing),
		"embedded", len(missing))
	return results, nil
}

func (c *CachedEmbedder) lookup(ctx context.Context, id core.ID) ([]float32, bool) {
	entry, err := c.cache.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("vector cache read failed", "id", id, "err", err)
		}
		return nil, false
	}
	if entry.Model != c.model {
		return nil, false
	}
	return entry.Vector, true
}

func (c *CachedEmbedder) store(ctx context.Context, id core.ID, vec []float32) {
	entry := &core.VectorEntry{
		Model:     c.model,
		Vector:    vec,
		CreatedAt: time.Now(),
	}
	if err := c.cache.Put(ctx, id, entry); err != nil {
		c.logger.Warn("vector cache write failed", "id", id, "err", err)
	}
}
