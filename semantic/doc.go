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


// Package semantic provides the vector retrieval path over a Pinecone index.
//
// The index stores one vector per leaf category of the product taxonomy,
// embedded from its full path ("Food > Pasta > Instant noodles"). Queries are
// embedded with the same model and matched by similarity, so a search for
// "noodles" surfaces adjacent categories a keyword match would miss.
//
// The Index type wraps the langchaingo Pinecone store: Upsert feeds the index
// during catalog ingestion and Query serves the semantic leg of a search.
// Raw query text is embedded as typed; normalization is a lexical-path
// concern and does not apply here.
package semantic
