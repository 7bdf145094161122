package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pantrylabs/foodsearch/core"
)

const topHits = 10

// Print writes a human-readable summary of the report to w: per-path counts
// followed by the top hits of each retrieval path.
func Print(w io.Writer, r *core.Report) {
	fmt.Fprintln(w, "\nSearch Summary:")
	fmt.Fprintf(w, "- Formatted input: %q\n", r.FormattedInput)
	fmt.Fprintf(w, "- Direct search: %d results\n", r.Lexical.Count)
	fmt.Fprintf(w, "- Fuzzy search: %d results\n", r.Fuzzy.Count)
	fmt.Fprintf(w, "- Semantic search: %d results\n", r.Semantic.Count)

	if len(r.Lexical.Results) > 0 {
		fmt.Fprintf(w, "\nTop %d direct search results (text relevance scoring):\n", topHits)
		for i, p := range limitProducts(r.Lexical.Results) {
			fmt.Fprintf(w, "  %d. Text Score: %.2f - ID: %s\n", i+1, p.TextScore, p.ID)
			printProduct(w, p)
		}
	}

	if len(r.Fuzzy.Results) > 0 {
		fmt.Fprintf(w, "\nTop %d fuzzy search results (string similarity scoring):\n", topHits)
		for i, p := range limitProducts(r.Fuzzy.Results) {
			fmt.Fprintf(w, "  %d. Fuzzy Score: %.2f (Text: %.2f) - ID: %s\n",
				i+1, p.FuzzyScore, p.TextScore, p.ID)
			printProduct(w, p)
		}
	}

	if len(r.Semantic.Results) > 0 {
		fmt.Fprintf(w, "\nTop %d semantic search results (vector similarity scoring):\n", topHits)
		hits := r.Semantic.Results
		if len(hits) > topHits {
			hits = hits[:topHits]
		}
		for i, hit := range hits {
			fmt.Fprintf(w, "  %d. Semantic Score: %.4f - ID: %s\n", i+1, hit.Score, hit.ID)
			fmt.Fprintf(w, "     Given Name: %s\n", orUnknown(hit.GivenName))
			fmt.Fprintf(w, "     Text: %s\n\n", orUnknown(hit.Text))
		}
	}
}

func printProduct(w io.Writer, p *core.Product) {
	fmt.Fprintf(w, "     Given Name: %s\n", orUnknown(p.GivenName))
	fmt.Fprintf(w, "     Product Names: %s\n", orUnknown(strings.Join(p.Name.Names(), ", ")))
	fmt.Fprintf(w, "     Quantity: %s\n", orUnknown(p.Quantity))
	fmt.Fprintf(w, "     Brands: %s\n", orUnknown(p.Brands))
	fmt.Fprintf(w, "     Categories: %s\n", orUnknown(strings.Join(p.Categories, ", ")))
	fmt.Fprintf(w, "     Labels: %s\n", orUnknown(strings.Join(p.Labels, ", ")))
	fmt.Fprintf(w, "     Text: %s\n\n", p.SearchText)
}

func limitProducts(products []*core.Product) []*core.Product {
	if len(products) > topHits {
		return products[:topHits]
	}
	return products
}

func orUnknown(s string) string {
	if s == "" {
		return core.UnknownName
	}
	return s
}
