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


// Package scoring computes fuzzy similarity scores between a user query and
// product records, and ranks result lists.
//
// The fuzzy score compares the raw query (not its normalized form, which
// discards case and punctuation a string comparator can still exploit)
// against the record's textual fields. Two comparison strategies from
// go-edlib are combined per field:
//
//   - Jaro-Winkler similarity on the strings as given
//   - Levenshtein similarity on the token-sorted, lowercased strings,
//     which makes the measure insensitive to word order
//
// The higher of the two wins for each field; fields are then combined by a
// fixed weighted average over the non-empty fields, scaled to [0, 100].
// The rule is fully deterministic: no randomness and no dependence on the
// order results arrive in.
package scoring
