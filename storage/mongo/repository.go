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


// Package mongo implements the product catalog repository on MongoDB.
// The lexical search path is a $text query over the search blob field with
// the backend's textScore as the relevance score.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/storage"
)

const defaultTimeout = 30 * time.Second

// Repository implements storage.ProductRepository on a MongoDB collection.
type Repository struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
	logger     *slog.Logger
}

var _ storage.ProductRepository = (*Repository)(nil)

// Option configures a Repository.
type Option func(*Repository)

// WithTimeout bounds every backend call. Default is 30s; backend calls must
// never block indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(r *Repository) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// Connect dials the catalog backend and verifies the connection with a ping.
// A failure here is terminal for the whole search: the lexical backend is
// mandatory, not optional-with-fallback.
func Connect(ctx context.Context, uri, database, collection string, opts ...Option) (*Repository, error) {
	r := &Repository{
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to catalog backend: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("catalog backend unreachable: %w", err)
	}

	r.client = client
	r.collection = client.Database(database).Collection(collection)
	return r, nil
}

// TextSearch runs a $text query with the formatted query string. Results are
// sorted descending by textScore by the backend itself, up to limit records.
func (r *Repository) TextSearch(ctx context.Context, formatted string, limit int) ([]*core.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	findOpts := options.Find().
		SetProjection(bson.M{fieldScore: bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{{Key: fieldScore, Value: bson.M{"$meta": "textScore"}}}).
		SetLimit(int64(limit))

	cur, err := r.collection.Find(ctx, bson.M{"$text": bson.M{"$search": formatted}}, findOpts)
	if err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) {
			return nil, fmt.Errorf("%w: %s", storage.ErrQueryRejected, cmdErr.Message)
		}
		return nil, err
	}
	defer cur.Close(ctx)

	var products []*core.Product
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			// One undecodable record must not abort the batch.
			r.logger.Warn("skipping undecodable catalog record", "err", err)
			continue
		}
		products = append(products, decodeProduct(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// InsertProducts adds products to the catalog after validating each record.
func (r *Repository) InsertProducts(ctx context.Context, products ...*core.Product) error {
	if len(products) == 0 {
		return nil
	}

	docs := make([]any, 0, len(products))
	for _, p := range products {
		if err := core.ValidateProduct(p); err != nil {
			return err
		}
		docs = append(docs, encodeProduct(p))
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("inserting products: %w", err)
	}
	return nil
}

// EnsureSearchIndex creates the text index over the search blob field.
// MongoDB treats repeated creation of an identical index as a no-op.
func (r *Repository) EnsureSearchIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: fieldSearchText, Value: "text"}},
	})
	if err != nil {
		return fmt.Errorf("creating search index: %w", err)
	}
	return nil
}

// Count returns the number of products in the catalog.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.collection.CountDocuments(ctx, bson.D{})
}

// Close disconnects from the backend.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
