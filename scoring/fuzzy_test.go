package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrylabs/foodsearch/core"
)

func nutellaProduct() *core.Product {
	return &core.Product{
		ID: "1",
		Name: core.MultipleNames([]string{
			"Nutella Hazelnut Spread",
			"Pâte à tartiner aux noisettes",
		}),
		Brands:         "Ferrero",
		Categories:     []string{"Spreads", "Sweet Spreads", "Chocolate Spreads"},
		CategoriesTags: []string{"en:spreads", "en:chocolate-spreads"},
		Labels:         []string{"Gluten-free", "No palm oil"},
		Quantity:       "350 g",
		SearchText:     "nutella hazelnut spread ferrero chocolate spreads 350 g",
	}
}

func TestScore_Bounds(t *testing.T) {
	p := nutellaProduct()
	queries := []string{
		"nutella",
		"Nutella Hazelnut Spread",
		"completely unrelated query about bicycles",
		"350g",
		"",
		"ąćęłńóśźż",
	}

	for _, q := range queries {
		s := Score(q, p)
		assert.GreaterOrEqual(t, s, 0.0, "query %q", q)
		assert.LessOrEqual(t, s, MaxScore, "query %q", q)
	}
}

func TestScore_SelfMatchIsMax(t *testing.T) {
	// An exact name hit scores the maximum even when the record carries
	// auxiliary fields the query says nothing about.
	text := "Coca Cola 500 ml"
	p := &core.Product{
		ID:         "1",
		Name:       core.SingleName(text),
		Brands:     "The Coca-Cola Company",
		Categories: []string{"Beverages", "Carbonated Drinks"},
		Labels:     []string{"Caffeine"},
		Quantity:   "6 x 500 ml",
		SearchText: "coca cola 500 ml beverages carbonated drinks",
	}

	assert.Equal(t, MaxScore, Score(text, p))
}

func TestScore_EmptyInputs(t *testing.T) {
	assert.Zero(t, Score("", nutellaProduct()))
	assert.Zero(t, Score("   ", nutellaProduct()))
	assert.Zero(t, Score("nutella", &core.Product{ID: "1"}))
	assert.Zero(t, Score("nutella", nil))
}

func TestScore_RelevanceOrdering(t *testing.T) {
	p := nutellaProduct()

	nameHit := Score("Nutella Hazelnut Spread", p)
	partial := Score("hazelnut", p)
	miss := Score("bicycle tire", p)

	assert.Greater(t, nameHit, partial)
	assert.Greater(t, partial, miss)
}

func TestScore_PrefersCloserMatchOverSharedPrefix(t *testing.T) {
	// Both records start with "Chocolate", but only one actually contains
	// the queried tokens; the shared prefix alone must not win.
	dessert := &core.Product{
		ID:         "a",
		Name:       core.SingleName("Chocolate Dessert Mix"),
		SearchText: "chocolate dessert mix baking",
	}
	bar := &core.Product{
		ID:         "b",
		Name:       core.SingleName("Chocolate Bar"),
		Brands:     "Wedel",
		SearchText: "chocolate bar wedel snacks",
	}

	query := "Chocolate Bar Wedel"
	assert.Greater(t, Score(query, bar), Score(query, dessert))
}

func TestSimilarity_CoverageAsymmetry(t *testing.T) {
	// A query fully contained in the candidate scores higher than one that
	// shares only a fraction of its tokens.
	contained := similarity("hazelnut", "nutella hazelnut spread")
	fraction := similarity("hazelnut spread recipe book", "nutella hazelnut spread")

	assert.Greater(t, contained, fraction)
	assert.InDelta(t, 1.0, similarity("Zero Cola", "cola zero"), 1e-9)
	assert.Zero(t, similarity("", "nutella"))
}

func TestScore_TokenOrderInsensitive(t *testing.T) {
	p := &core.Product{
		ID:   "1",
		Name: core.SingleName("Coca Cola Zero"),
	}

	ordered := Score("Coca Cola Zero", p)
	shuffled := Score("Zero Cola Coca", p)

	// The token-sorted strategy should rate the shuffled query as highly as
	// the ordered one.
	assert.InDelta(t, ordered, shuffled, 1e-9)
	assert.Equal(t, MaxScore, ordered)
}

func TestScore_DoesNotMutateRecord(t *testing.T) {
	p := nutellaProduct()
	p.TextScore = 9.1

	_ = Score("nutella", p)

	assert.Equal(t, 9.1, p.TextScore)
	assert.Zero(t, p.FuzzyScore)
}

func TestScore_Deterministic(t *testing.T) {
	p := nutellaProduct()
	first := Score("nutella spread", p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score("nutella spread", p))
	}
}

func TestCategoryCandidates_TagPrefixStripped(t *testing.T) {
	p := &core.Product{
		Categories:     []string{"Spreads", " "},
		CategoriesTags: []string{"en:chocolate-spreads", "fr:pates-a-tartiner"},
	}

	got := categoryCandidates(p)
	assert.Equal(t, []string{"Spreads", "chocolate spreads", "pates a tartiner"}, got)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Nutella", "Ferrero"}, splitList("Nutella, Ferrero"))
	assert.Equal(t, []string{"Ferrero"}, splitList(" Ferrero ,, "))
	assert.Empty(t, splitList("  "))
}

func TestTokenSorted(t *testing.T) {
	assert.Equal(t, "coca cola zero", tokenSorted("Zero Coca Cola"))
	assert.Equal(t, "", tokenSorted("   "))
}
