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


package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/storage"
)

// VectorCache implements storage.VectorCache for BadgerDB.
type VectorCache struct {
	backend *Backend
}

var _ storage.VectorCache = (*VectorCache)(nil)

// NewVectorCache creates a new VectorCache.
func NewVectorCache(backend *Backend) (*VectorCache, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &VectorCache{backend: backend}, nil
}

// Get retrieves a cached embedding by content ID.
func (c *VectorCache) Get(_ context.Context, id core.ID) (*core.VectorEntry, error) {
	var entry *core.VectorEntry
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorEntryKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalVectorEntry(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Put stores an embedding under the given content ID.
func (c *VectorCache) Put(_ context.Context, id core.ID, entry *core.VectorEntry) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeVectorEntryKey(id), storage.MarshalVectorEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op; the underlying backend owns the database handle.
func (c *VectorCache) Close() error {
	return nil
}
