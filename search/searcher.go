package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/scoring"
	"github.com/pantrylabs/foodsearch/storage"
)

const (
	// DefaultLexicalLimit caps how many candidates the text search returns.
	DefaultLexicalLimit = 50

	// DefaultTopK is the number of semantic matches requested per query.
	DefaultTopK = 10
)

// SemanticIndex is the vector retrieval backend the searcher queries for the
// semantic path. See the semantic package for the production implementation.
type SemanticIndex interface {
	Query(ctx context.Context, query string, topK int) ([]core.SemanticHit, error)
}

// Searcher runs the lexical, fuzzy and semantic retrieval paths for a query
// and assembles them into a single report.
type Searcher struct {
	repository   storage.ProductRepository
	index        SemanticIndex
	lexicalLimit int
	topK         int
	logger       *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithLexicalLimit sets the candidate cap for the text search.
func WithLexicalLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit < 1 {
			return errors.New("lexical limit must be positive")
		}
		s.lexicalLimit = limit
		return nil
	}
}

// WithTopK sets how many semantic matches are requested per query.
func WithTopK(topK int) Option {
	return func(s *Searcher) error {
		if topK < 1 {
			return errors.New("topK must be positive")
		}
		s.topK = topK
		return nil
	}
}

// NewSearcher creates a new searcher. The semantic index may be nil, in which
// case the semantic path always reports zero results.
func NewSearcher(repository storage.ProductRepository, index SemanticIndex, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Searcher{
		repository:   repository,
		index:        index,
		lexicalLimit: DefaultLexicalLimit,
		topK:         DefaultTopK,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs all retrieval paths for the raw query string.
// Returns core.ErrEmptyQuery without touching any backend when the query
// normalizes to nothing.
func (s *Searcher) Search(ctx context.Context, raw string) (*core.Report, error) {
	return s.SearchWithMonitor(ctx, raw, nil)
}

// SearchWithMonitor runs the search with monitoring. The monitor receives
// callbacks after each pipeline stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, raw string, monitor SearchMonitor) (*core.Report, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query := core.NewQuery(raw)
	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}
	monitor.Start(query)

	// 1. Lexical path: full-text search over the normalized query.
	lexical, err := s.repository.TextSearch(ctx, query.Normalized, s.lexicalLimit)
	if err != nil {
		if !errors.Is(err, storage.ErrQueryRejected) {
			s.logger.Error("text search failed", "query", query.Normalized, "err", err)
			return nil, err
		}
		// A rejected query degrades to zero lexical (and fuzzy) results.
		s.logger.Warn("text search rejected query", "query", query.Normalized, "err", err)
		lexical = nil
	}
	for _, p := range lexical {
		p.GivenName = p.ComputeGivenName()
	}
	monitor.AfterLexicalSearch(lexical)

	// 2. Fuzzy path: re-score clones of the lexical candidates against the
	// raw query, leaving the lexical ordering untouched.
	rescored := make([]*core.Product, 0, len(lexical))
	for _, p := range lexical {
		clone := p.Clone()
		clone.FuzzyScore = scoring.Score(query.Raw, clone)
		rescored = append(rescored, clone)
	}
	rescored = scoring.Rank(rescored, scoring.ByFuzzyScore)
	monitor.AfterFuzzyRescore(rescored)

	// 3. Semantic path: vector match over the raw query text.
	var hits []core.SemanticHit
	if s.index != nil {
		hits, err = s.index.Query(ctx, query.Raw, s.topK)
		if err != nil {
			s.logger.Warn("semantic search failed, continuing without it", "err", err)
			hits = nil
		}
	}
	monitor.AfterSemanticSearch(hits)

	report := &core.Report{
		Timestamp:      time.Now(),
		InputString:    query.Raw,
		FormattedInput: query.Normalized,
		Lexical:        core.ResultSet{Count: len(lexical), Results: lexical},
		Fuzzy:          core.ResultSet{Count: len(rescored), Results: rescored},
		Semantic:       core.SemanticResultSet{Count: len(hits), Results: hits},
	}
	monitor.Finish(report)

	s.logger.Info("search complete",
		"query", query.Raw,
		"lexical", report.Lexical.Count,
		"fuzzy", report.Fuzzy.Count,
		"semantic", report.Semantic.Count)
	return report, nil
}
