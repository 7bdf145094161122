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
	"errors"
	"os"
	"time"
)

// Defaults for optional configuration values.
const (
	DefaultDatabase       = "off"
	DefaultCollection     = "products-catalog"
	DefaultTimeout        = 30 * time.Second
	DefaultVectorCacheDir = ".foodsearch-cache"
)

// Config holds the settings for every backend the catalog talks to.
type Config struct {
	// MongoURI is the connection string of the catalog database. Required.
	MongoURI string

	// MongoDatabase and Collection locate the product records.
	MongoDatabase string
	Collection    string

	// PineconeAPIKey and PineconeHost configure the semantic index. Both
	// empty disables the semantic path; setting only one is an error.
	PineconeAPIKey    string
	PineconeHost      string
	PineconeNamespace string

	// EmbeddingHost and EmbeddingModel configure the embedding service.
	EmbeddingHost   string
	EmbeddingModel  string
	EmbeddingAPIKey string

	// VectorCachePath is the directory of the persistent embedding cache.
	VectorCachePath string

	// Timeout bounds individual backend requests.
	Timeout time.Duration
}

// FromEnv builds a Config from environment variables, applying defaults for
// the optional values. Call Validate before use.
func FromEnv() *Config {
	cfg := &Config{
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     envOr("MONGO_DATABASE", DefaultDatabase),
		Collection:        envOr("MONGO_COLLECTION", DefaultCollection),
		PineconeAPIKey:    os.Getenv("PINECONE_API_KEY"),
		PineconeHost:      os.Getenv("PINECONE_HOST"),
		PineconeNamespace: os.Getenv("PINECONE_NAMESPACE"),
		EmbeddingHost:     os.Getenv("EMBEDDING_HOST"),
		EmbeddingModel:    os.Getenv("EMBEDDING_MODEL"),
		EmbeddingAPIKey:   os.Getenv("EMBEDDING_API_KEY"),
		VectorCachePath:   envOr("VECTOR_CACHE_PATH", DefaultVectorCacheDir),
		Timeout:           DefaultTimeout,
	}

	if raw := os.Getenv("SEARCH_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("config: MONGO_URI is required")
	}
	if c.MongoDatabase == "" {
		return errors.New("config: database name is required")
	}
	if c.Collection == "" {
		return errors.New("config: collection name is required")
	}
	if (c.PineconeAPIKey == "") != (c.PineconeHost == "") {
		return errors.New("config: PINECONE_API_KEY and PINECONE_HOST must be set together")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	return nil
}

// SemanticEnabled reports whether the semantic path is configured.
func (c *Config) SemanticEnabled() bool {
	return c.PineconeAPIKey != "" && c.PineconeHost != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
