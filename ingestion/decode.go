package ingestion

import (
	"fmt"
	"strings"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/semantic"
)

// decodeRecord maps one raw export record onto a Product. Exports are
// loosely typed: the name may be a string or a list, list fields may arrive
// as comma-separated strings, and the ID may be numeric.
func decodeRecord(raw map[string]any) (*core.Product, error) {
	p := &core.Product{
		ID:             idString(raw["_id"]),
		Name:           core.NameFieldFromAny(raw["product_name"]),
		Quantity:       stringValue(raw["quantity"]),
		Brands:         stringValue(raw["brands"]),
		Categories:     stringList(raw["categories"]),
		CategoriesTags: stringList(raw["categories_tags"]),
		Labels:         stringList(raw["labels"]),
		SearchText:     stringValue(raw["search_string"]),
	}

	if p.SearchText == "" {
		p.SearchText = buildSearchText(p)
	}

	if err := core.ValidateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

// buildSearchText assembles the full-text blob indexed by the search backend:
// every name variant, brand, category and label plus the quantity, lowercased
// and space-joined.
func buildSearchText(p *core.Product) string {
	var parts []string
	parts = append(parts, p.Name.Names()...)
	for _, brand := range strings.Split(p.Brands, ",") {
		if b := strings.TrimSpace(brand); b != "" {
			parts = append(parts, b)
		}
	}
	parts = append(parts, p.Categories...)
	parts = append(parts, p.Labels...)
	if p.Quantity != "" {
		parts = append(parts, p.Quantity)
	}

	blob := strings.ToLower(strings.Join(parts, " "))
	return strings.Join(strings.Fields(blob), " ")
}

// leafCategory returns the last category of the record's path and the full
// path joined with " > ". Records without categories yield an empty leaf.
func leafCategory(p *core.Product) (leaf, fullPath string) {
	if len(p.Categories) == 0 {
		return "", ""
	}
	return p.Categories[len(p.Categories)-1], strings.Join(p.Categories, " > ")
}

// collectCategories turns the leaf→path map into a deterministic slice.
func collectCategories(paths map[string]string, order []string) []semantic.Category {
	categories := make([]semantic.Category, 0, len(paths))
	for _, leaf := range order {
		categories = append(categories, semantic.Category{
			Name:     leaf,
			FullPath: paths[leaf],
		})
	}
	return categories
}

func idString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers land as float64; catalog codes are integral.
		return fmt.Sprintf("%.0f", val)
	default:
		return fmt.Sprint(val)
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringList(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		return out
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}
