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


package ingestion

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/semantic"
	"github.com/pantrylabs/foodsearch/storage"
)

// CategoryUpserter receives the unique leaf categories collected during a
// run. The semantic.Index satisfies it.
type CategoryUpserter interface {
	Upsert(ctx context.Context, categories []semantic.Category) (int, error)
}

// Stats summarizes one pipeline run.
type Stats struct {
	Decoded    int64 // records read from the input
	Skipped    int64 // records dropped by validation or decode failures
	Inserted   int64 // records written to the catalog
	Categories int   // unique leaf categories collected
	Vectors    int   // category vectors written to the semantic index
}

// Pipeline orchestrates loading a product export into the catalog and the
// semantic index. Insert batches run concurrently on a worker pool.
type Pipeline struct {
	repository storage.ProductRepository
	upserter   CategoryUpserter
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch inserts.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records are inserted per batch.
// Default is 500.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline. The upserter may be nil to
// skip the semantic index entirely.
func NewPipeline(repository storage.ProductRepository, upserter CategoryUpserter, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		upserter:   upserter,
		pool:       pool,
		batchSize:  500,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Run streams a JSON array of product records from r, inserting them in
// batches and upserting the collected category paths. Malformed records are
// skipped; a storage failure aborts the run after in-flight batches drain.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (*Stats, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, ErrMalformedInput
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, ErrMalformedInput
	}

	stats := &Stats{}
	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)

	flush := func(batch []*core.Product) error {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.repository.InsertProducts(ctx, batch...); err != nil {
				p.logger.Error("batch insert failed", "size", len(batch), "err", err)
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}
			atomic.AddInt64(&stats.Inserted, int64(len(batch)))
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
		return nil
	}

	paths := make(map[string]string)
	var order []string

	batch := make([]*core.Product, 0, p.batchSize)
	for dec.More() {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return stats, err
		}

		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			wg.Wait()
			return stats, ErrMalformedInput
		}
		stats.Decoded++

		product, err := decodeRecord(raw)
		if err != nil {
			p.logger.Warn("skipping record", "err", err)
			stats.Skipped++
			continue
		}

		if leaf, fullPath := leafCategory(product); leaf != "" {
			if _, seen := paths[leaf]; !seen {
				paths[leaf] = fullPath
				order = append(order, leaf)
			}
		}

		batch = append(batch, product)
		if len(batch) >= p.batchSize {
			if err := flush(batch); err != nil {
				wg.Wait()
				return stats, err
			}
			batch = make([]*core.Product, 0, p.batchSize)
		}
	}

	if _, err := dec.Token(); err != nil {
		wg.Wait()
		return stats, ErrMalformedInput
	}

	if len(batch) > 0 {
		if err := flush(batch); err != nil {
			wg.Wait()
			return stats, err
		}
	}
	wg.Wait()

	if firstErr != nil {
		return stats, firstErr
	}

	if err := p.repository.EnsureSearchIndex(ctx); err != nil {
		return stats, err
	}

	stats.Categories = len(paths)
	if p.upserter != nil && len(paths) > 0 {
		written, err := p.upserter.Upsert(ctx, collectCategories(paths, order))
		if err != nil {
			return stats, err
		}
		stats.Vectors = written
	}

	p.logger.Info("ingestion complete",
		"decoded", stats.Decoded,
		"skipped", stats.Skipped,
		"inserted", stats.Inserted,
		"categories", stats.Categories,
		"vectors", stats.Vectors)
	return stats, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
