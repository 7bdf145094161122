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


package storage

import "errors"

var (
	// ErrNotFound is returned when a requested entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrQueryRejected is returned when the search backend rejects a query
	// as malformed. Callers treat it as zero results rather than a failure
	// of the whole search.
	ErrQueryRejected = errors.New("query rejected by backend")

	// ErrBackendRequired is returned when a repository is constructed
	// without a backend.
	ErrBackendRequired = errors.New("storage backend required")
)
