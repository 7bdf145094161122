package scoring

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/pantrylabs/foodsearch/core"
)

// MaxScore is the upper bound of the fuzzy similarity scale.
const MaxScore = 100.0

// Coverage weights for the per-field similarity. Query coverage dominates so
// a record containing every query token scores high even when the record
// carries extra tokens, matching how users phrase partial queries.
const (
	queryCoverageWeight  = 0.7
	targetCoverageWeight = 0.3
)

// Score computes the fuzzy similarity between the raw query and a product
// record, in [0, MaxScore]. Each textual field is compared independently and
// the best field wins, so a strong name hit is never diluted by unrelated
// categories or labels. The function is pure: it never mutates the record and
// never fails; any per-field comparator error degrades that field to 0.
func Score(query string, p *core.Product) float64 {
	if strings.TrimSpace(query) == "" || p == nil {
		return 0
	}

	var candidates []string
	candidates = append(candidates, p.Name.Names()...)
	candidates = append(candidates, splitList(p.Brands)...)
	candidates = append(candidates, categoryCandidates(p)...)
	candidates = append(candidates, p.Labels...)
	if p.Quantity != "" {
		candidates = append(candidates, p.Quantity)
	}
	if p.SearchText != "" {
		candidates = append(candidates, p.SearchText)
	}

	score := bestOver(query, candidates) * MaxScore
	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// similarity compares two strings token-wise, in [0, 1]. Identical token sets
// score 1 regardless of order and case. Otherwise the score blends how well
// b covers a's tokens with how well a covers b's, weighted toward the first
// argument (the query side).
func similarity(a, b string) float64 {
	at := strings.Fields(strings.ToLower(a))
	bt := strings.Fields(strings.ToLower(b))
	if len(at) == 0 || len(bt) == 0 {
		return 0
	}
	if tokenSorted(a) == tokenSorted(b) {
		return 1.0
	}
	return queryCoverageWeight*coverage(at, bt) + targetCoverageWeight*coverage(bt, at)
}

// coverage averages, over the tokens of a, the best per-token similarity
// against any token of b. Per-token comparison uses Jaro-Winkler so small
// typos still match; whole tokens with nothing in common score near 0.
func coverage(a, b []string) float64 {
	var sum float64
	for _, ta := range a {
		best := 0.0
		for _, tb := range b {
			if ta == tb {
				best = 1.0
				break
			}
			if s, err := edlib.StringsSimilarity(ta, tb, edlib.JaroWinkler); err == nil && float64(s) > best {
				best = float64(s)
			}
		}
		sum += best
	}
	return sum / float64(len(a))
}

// bestOver returns the highest similarity between the query and any candidate.
func bestOver(query string, candidates []string) float64 {
	best := 0.0
	for _, c := range candidates {
		if s := similarity(query, c); s > best {
			best = s
		}
	}
	return best
}

// tokenSorted lowercases, splits on whitespace, sorts the tokens, and rejoins.
func tokenSorted(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// splitList splits a comma-separated field ("Nutella, Ferrero") into entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// categoryCandidates merges plain categories with their tag forms. Tags carry
// a language prefix ("en:chocolate-spreads") that is stripped, and dashes
// become spaces, so tags compare the same way display categories do.
func categoryCandidates(p *core.Product) []string {
	out := make([]string, 0, len(p.Categories)+len(p.CategoriesTags))
	for _, c := range p.Categories {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	for _, tag := range p.CategoriesTags {
		if i := strings.Index(tag, ":"); i >= 0 {
			tag = tag[i+1:]
		}
		tag = strings.ReplaceAll(strings.TrimSpace(tag), "-", " ")
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
