package report

import (
	"encoding/json"
	"time"

	"github.com/pantrylabs/foodsearch/core"
)

// productDocument is the JSON form of one catalog hit.
type productDocument struct {
	ID             string   `json:"_id"`
	GivenName      string   `json:"given_name"`
	ProductNames   []string `json:"product_name"`
	Quantity       string   `json:"quantity,omitempty"`
	Brands         string   `json:"brands,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	Labels         []string `json:"labels,omitempty"`
	SearchText     string   `json:"search_string"`
	Score          float64  `json:"score"`
	RelevanceScore float64  `json:"rapidfuzz_score,omitempty"`
}

type semanticDocument struct {
	ID        string         `json:"id"`
	Score     float32        `json:"score"`
	GivenName string         `json:"given_name"`
	Text      string         `json:"text"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type resultBlock[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// document is the serialized report.
type document struct {
	Timestamp       string                        `json:"timestamp"`
	InputString     string                        `json:"input_string"`
	FormattedString string                        `json:"formatted_string"`
	DirectSearch    resultBlock[productDocument]  `json:"direct_search"`
	RapidfuzzSearch resultBlock[productDocument]  `json:"rapidfuzz_search"`
	PineconeSearch  resultBlock[semanticDocument] `json:"pinecone_search"`
}

// Marshal renders the report as indented JSON.
func Marshal(r *core.Report) ([]byte, error) {
	doc := document{
		Timestamp:       r.Timestamp.Format(time.RFC3339),
		InputString:     r.InputString,
		FormattedString: r.FormattedInput,
		DirectSearch: resultBlock[productDocument]{
			Count:   r.Lexical.Count,
			Results: productDocuments(r.Lexical.Results, false),
		},
		RapidfuzzSearch: resultBlock[productDocument]{
			Count:   r.Fuzzy.Count,
			Results: productDocuments(r.Fuzzy.Results, true),
		},
		PineconeSearch: resultBlock[semanticDocument]{
			Count:   r.Semantic.Count,
			Results: semanticDocuments(r.Semantic.Results),
		},
	}
	return json.MarshalIndent(doc, "", "  ")
}

func productDocuments(products []*core.Product, withRelevance bool) []productDocument {
	docs := make([]productDocument, 0, len(products))
	for _, p := range products {
		doc := productDocument{
			ID:           p.ID,
			GivenName:    p.GivenName,
			ProductNames: p.Name.Names(),
			Quantity:     p.Quantity,
			Brands:       p.Brands,
			Categories:   p.Categories,
			Labels:       p.Labels,
			SearchText:   p.SearchText,
			Score:        p.TextScore,
		}
		if withRelevance {
			doc.RelevanceScore = p.FuzzyScore
		}
		docs = append(docs, doc)
	}
	return docs
}

func semanticDocuments(hits []core.SemanticHit) []semanticDocument {
	docs := make([]semanticDocument, 0, len(hits))
	for _, hit := range hits {
		docs = append(docs, semanticDocument{
			ID:        hit.ID,
			Score:     hit.Score,
			GivenName: hit.GivenName,
			Text:      hit.Text,
			Metadata:  hit.Metadata,
		})
	}
	return docs
}
