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


// Package search orchestrates the three retrieval paths over the product
// catalog.
//
// The Searcher type implements a multi-stage pipeline for one query:
//   - Lexical: full-text search with the normalized query, ranked by the
//     backend's relevance score
//   - Fuzzy: the lexical candidates re-scored against the raw query with
//     string similarity and re-ranked
//   - Semantic: vector similarity over the category index
//
// The paths degrade independently: a query the text backend rejects, or a
// semantic backend failure, yields an empty result set for that path while
// the others still report. Only connection-level failures abort the search.
package search
