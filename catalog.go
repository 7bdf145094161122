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


package foodsearch

import (
	"context"
	"log/slog"

	"github.com/pantrylabs/foodsearch/ai"
	"github.com/pantrylabs/foodsearch/ai/openai"
	"github.com/pantrylabs/foodsearch/ingestion"
	"github.com/pantrylabs/foodsearch/search"
	"github.com/pantrylabs/foodsearch/semantic"
	"github.com/pantrylabs/foodsearch/storage"
	"github.com/pantrylabs/foodsearch/storage/badger"
	"github.com/pantrylabs/foodsearch/storage/mongo"
)

// Catalog owns the backend connections and hands out searchers and ingestion
// pipelines wired to them.
type Catalog struct {
	repository   storage.ProductRepository
	cacheBackend *badger.Backend
	cache        storage.VectorCache
	provider     ai.Provider
	index        *semantic.Index
	logger       *slog.Logger
}

// NewCatalog connects every configured backend. A failure to reach the
// catalog database or to open the local cache is terminal; the semantic index
// is only built when the config enables it.
func NewCatalog(ctx context.Context, cfg *Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	repository, err := mongo.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.Collection,
		mongo.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}

	aiOpts := []ai.ConfigOption{}
	if cfg.EmbeddingHost != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingHost(cfg.EmbeddingHost))
	}
	if cfg.EmbeddingModel != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingModel(cfg.EmbeddingModel))
	}
	if cfg.EmbeddingAPIKey != "" {
		aiOpts = append(aiOpts, ai.WithAPIKey(cfg.EmbeddingAPIKey))
	}
	aiConfig := ai.NewConfig(aiOpts...)

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		repository.Close(ctx)
		return nil, err
	}

	backend, err := badger.OpenBackend(cfg.VectorCachePath, false)
	if err != nil {
		provider.Close()
		repository.Close(ctx)
		return nil, err
	}

	cache, err := badger.NewVectorCache(backend)
	if err != nil {
		backend.Close()
		provider.Close()
		repository.Close(ctx)
		return nil, err
	}

	catalog := &Catalog{
		repository:   repository,
		cacheBackend: backend,
		cache:        cache,
		provider:     provider,
		logger:       slog.Default(),
	}

	if cfg.SemanticEnabled() {
		embedder, err := ai.NewCachedEmbedder(provider.Embedder(), cache, aiConfig.EmbeddingModel)
		if err != nil {
			catalog.Close(ctx)
			return nil, err
		}

		index, err := semantic.NewIndex(embedder,
			cfg.PineconeAPIKey, cfg.PineconeHost, cfg.PineconeNamespace)
		if err != nil {
			catalog.Close(ctx)
			return nil, err
		}
		catalog.index = index
	}

	return catalog, nil
}

// Close releases every backend connection.
func (c *Catalog) Close(ctx context.Context) error {
	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing embedding provider", "err", err)
	}

	if err := c.cache.Close(); err != nil {
		c.logger.Error("error closing vector cache", "err", err)
	}
	if err := c.cacheBackend.Close(); err != nil {
		c.logger.Error("error closing cache backend", "err", err)
		return err
	}

	if err := c.repository.Close(ctx); err != nil {
		c.logger.Error("error closing product repository", "err", err)
		return err
	}
	return nil
}

// Repository exposes the product repository.
func (c *Catalog) Repository() storage.ProductRepository {
	return c.repository
}

// NewSearcher builds a searcher over the catalog's backends.
func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	if c.index == nil {
		return search.NewSearcher(c.repository, nil, opts...)
	}
	return search.NewSearcher(c.repository, c.index, opts...)
}

// NewIngestionPipeline builds an ingestion pipeline over the catalog's
// backends. When skipVectors is true, or the semantic index is not
// configured, category vectors are not written.
func (c *Catalog) NewIngestionPipeline(skipVectors bool, opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	if skipVectors || c.index == nil {
		return ingestion.NewPipeline(c.repository, nil, opts...)
	}
	return ingestion.NewPipeline(c.repository, c.index, opts...)
}
