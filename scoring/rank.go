package scoring

import (
	"sort"

	"github.com/pantrylabs/foodsearch/core"
)

// Key selects the numeric ranking key for a product.
type Key func(*core.Product) float64

// ByTextScore ranks by the lexical backend's relevance score.
// Records the backend returned without a score carry the zero value and sort
// below every scored record.
func ByTextScore(p *core.Product) float64 {
	return p.TextScore
}

// ByFuzzyScore ranks by the fuzzy similarity score.
func ByFuzzyScore(p *core.Product) float64 {
	return p.FuzzyScore
}

// Rank sorts products in place by descending key and returns the slice.
// The sort is stable: records with equal keys keep their relative input
// order. Ranking never fails.
func Rank(products []*core.Product, key Key) []*core.Product {
	sort.SliceStable(products, func(i, j int) bool {
		return key(products[i]) > key(products[j])
	})
	return products
}
