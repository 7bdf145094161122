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


package core

import "fmt"

// ValidateProduct validates a Product according to domain rules.
//
// Validation rules:
//   - ID must not be empty (opaque, but required for correlation)
//
// NOT validated (populated later in the pipeline):
//   - GivenName (set during enrichment)
//   - TextScore / FuzzyScore (set by the retrieval and scoring stages)
//   - Name (the absent variant is legal; it degrades to the display sentinel)
func ValidateProduct(p *Product) error {
	if p == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}

	if p.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyProductID)
	}

	return nil
}

// ValidateQuery rejects queries that normalize to the empty string.
// Callers must do this before any backend call is attempted.
func ValidateQuery(q Query) error {
	if q.IsEmpty() {
		return ErrEmptyQuery
	}
	return nil
}
