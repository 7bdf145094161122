package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier used for cache keys and vector IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Query is an immutable search query value: the string as the user typed it
// and its canonical form for lexical matching.
type Query struct {
	Raw        string
	Normalized string
}

// NewQuery derives the canonical form from the raw input.
func NewQuery(raw string) Query {
	return Query{Raw: raw, Normalized: NormalizeQuery(raw)}
}

// IsEmpty reports whether the query carries no searchable content.
// A whitespace-only input normalizes to the empty string.
func (q Query) IsEmpty() bool {
	return q.Normalized == ""
}

// Product is a single catalog record as returned by the lexical backend.
// Records are transient: created per search invocation, enriched in place,
// and discarded after the report is produced.
type Product struct {
	ID             string
	Name           NameField
	GivenName      string // Display name; populated by enrichment
	Quantity       string
	Brands         string
	Categories     []string
	CategoriesTags []string
	Labels         []string
	SearchText     string  // Pre-built search blob stored with the record
	TextScore      float64 // Relevance score assigned by the lexical backend; zero when absent
	FuzzyScore     float64 // Similarity score in [0, 100]; populated by scoring
}

// Clone returns a shallow copy with its own slice headers, so re-ranking one
// result list cannot reorder another.
func (p *Product) Clone() *Product {
	cp := *p
	cp.Categories = append([]string(nil), p.Categories...)
	cp.CategoriesTags = append([]string(nil), p.CategoriesTags...)
	cp.Labels = append([]string(nil), p.Labels...)
	return &cp
}

// SemanticHit is a single result from the vector backend. Metadata is opaque
// and passed through to the report unchanged.
type SemanticHit struct {
	ID        string
	Score     float32
	Text      string
	GivenName string
	Metadata  map[string]any
}

// VectorEntry is a cached embedding vector together with the model that
// produced it. Entries from a different model are treated as misses.
type VectorEntry struct {
	Model     string
	Vector    []float32
	CreatedAt time.Time
}

// ResultSet is a ranked list of products with its count.
type ResultSet struct {
	Count   int
	Results []*Product
}

// SemanticResultSet is a ranked list of semantic hits with its count.
type SemanticResultSet struct {
	Count   int
	Results []SemanticHit
}

// Report bundles the outcome of one search invocation across all three
// retrieval paths.
type Report struct {
	Timestamp      time.Time
	InputString    string
	FormattedInput string
	Lexical        ResultSet
	Fuzzy          ResultSet
	Semantic       SemanticResultSet
}
