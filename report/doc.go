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


// Package report renders search reports: a JSON document written to disk and
// a human-readable console summary with the top hits of each retrieval path.
//
// The JSON layout keeps one result block per path (direct_search,
// rapidfuzz_search, pinecone_search), each with its count and full result
// list, so downstream tooling can diff runs.
package report
