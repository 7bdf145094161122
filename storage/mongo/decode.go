package mongo

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pantrylabs/foodsearch/core"
)

// Field names in the products collection.
const (
	fieldID             = "_id"
	fieldProductName    = "product_name"
	fieldQuantity       = "quantity"
	fieldBrands         = "brands"
	fieldCategories     = "categories"
	fieldCategoriesTags = "categories_tags"
	fieldLabels         = "labels"
	fieldSearchText     = "search_string"
	fieldScore          = "score"
)

// decodeProduct maps a raw catalog document onto a Product. This is the
// ingestion boundary for the loosely-typed fields: the name may be a string,
// a list, or absent, and is resolved into the NameField variant here so the
// rest of the pipeline never type-switches.
func decodeProduct(doc bson.M) *core.Product {
	return &core.Product{
		ID:             decodeID(doc[fieldID]),
		Name:           core.NameFieldFromAny(unwrapArray(doc[fieldProductName])),
		Quantity:       asString(doc[fieldQuantity]),
		Brands:         asString(doc[fieldBrands]),
		Categories:     asStringList(doc[fieldCategories]),
		CategoriesTags: asStringList(doc[fieldCategoriesTags]),
		Labels:         asStringList(doc[fieldLabels]),
		SearchText:     asString(doc[fieldSearchText]),
		TextScore:      asFloat(doc[fieldScore]),
	}
}

// encodeProduct maps a Product onto its canonical document form. Names are
// always stored as a list, regardless of the shape they arrived in.
func encodeProduct(p *core.Product) bson.M {
	return bson.M{
		fieldID:             p.ID,
		fieldProductName:    p.Name.Names(),
		fieldQuantity:       p.Quantity,
		fieldBrands:         p.Brands,
		fieldCategories:     p.Categories,
		fieldCategoriesTags: p.CategoriesTags,
		fieldLabels:         p.Labels,
		fieldSearchText:     p.SearchText,
	}
}

func decodeID(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	// Object IDs and numeric codes correlate fine as their string form;
	// the identifier is opaque and never parsed.
	return fmt.Sprint(v)
}

// unwrapArray strips the bson.A wrapper so type switches over plain []any in
// the domain layer see the value, which never imports the driver types.
func unwrapArray(v any) any {
	if a, ok := v.(bson.A); ok {
		return []any(a)
	}
	return v
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// asStringList accepts list-valued fields in the shapes catalog exports use:
// a proper array, or a single comma-separated string.
func asStringList(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case bson.A:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
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
