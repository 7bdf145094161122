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


// Package storage defines the persistence contracts of foodsearch: the
// product catalog repository backing the lexical search path, and the local
// embedding cache used during ingestion.
//
// Implementations live in subpackages (storage/mongo for the catalog,
// storage/badger for the cache) so the core pipeline depends only on these
// interfaces.
package storage
