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


package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrylabs/foodsearch/core"
	"github.com/pantrylabs/foodsearch/storage"
)

// stubRepository implements storage.ProductRepository over a fixed result
// list, recording the queries it receives.
type stubRepository struct {
	products  []*core.Product
	err       error
	gotQuery  string
	gotLimit  int
	callCount int
}

func (r *stubRepository) TextSearch(_ context.Context, formatted string, limit int) ([]*core.Product, error) {
	r.callCount++
	r.gotQuery = formatted
	r.gotLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	return r.products, nil
}

func (r *stubRepository) InsertProducts(context.Context, ...*core.Product) error { return nil }
func (r *stubRepository) EnsureSearchIndex(context.Context) error                { return nil }
func (r *stubRepository) Count(context.Context) (int64, error)                   { return 0, nil }
func (r *stubRepository) Close(context.Context) error                            { return nil }

type stubIndex struct {
	hits      []core.SemanticHit
	err       error
	gotQuery  string
	callCount int
}

func (ix *stubIndex) Query(_ context.Context, query string, _ int) ([]core.SemanticHit, error) {
	ix.callCount++
	ix.gotQuery = query
	return ix.hits, ix.err
}

func catalogFixture() []*core.Product {
	// The text backend ranks the generic record higher; the fuzzy pass
	// should invert that for a query naming the second product.
	return []*core.Product{
		{
			ID:         "a",
			Name:       core.SingleName("Chocolate Dessert Mix"),
			SearchText: "chocolate dessert mix baking",
			TextScore:  9.5,
		},
		{
			ID:         "b",
			Name:       core.SingleName("Chocolate Bar"),
			Brands:     "Wedel",
			SearchText: "chocolate bar wedel snacks",
			TextScore:  7.0,
		},
	}
}

func TestNewSearcher_RequiresRepository(t *testing.T) {
	_, err := NewSearcher(nil, &stubIndex{})
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}

func TestNewSearcher_RejectsBadOptions(t *testing.T) {
	repo := &stubRepository{}

	_, err := NewSearcher(repo, nil, WithLexicalLimit(0))
	assert.Error(t, err)

	_, err = NewSearcher(repo, nil, WithTopK(-1))
	assert.Error(t, err)
}

func TestSearch_EmptyQueryNeverTouchesBackends(t *testing.T) {
	repo := &stubRepository{}
	index := &stubIndex{}
	searcher, err := NewSearcher(repo, index)
	require.NoError(t, err)

	for _, raw := range []string{"", "   ", ",;, ;"} {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			_, err := searcher.Search(context.Background(), raw)
			assert.ErrorIs(t, err, core.ErrEmptyQuery)
		})
	}

	assert.Zero(t, repo.callCount)
	assert.Zero(t, index.callCount)
}

func TestSearch_FuzzyReordersWithoutTouchingLexical(t *testing.T) {
	repo := &stubRepository{products: catalogFixture()}
	index := &stubIndex{}
	searcher, err := NewSearcher(repo, index)
	require.NoError(t, err)

	report, err := searcher.Search(context.Background(), "Chocolate Bar Wedel")
	require.NoError(t, err)

	// Lexical keeps the backend's relevance order.
	require.Equal(t, 2, report.Lexical.Count)
	assert.Equal(t, "a", report.Lexical.Results[0].ID)
	assert.Equal(t, "b", report.Lexical.Results[1].ID)

	// The fuzzy pass promotes the closer string match.
	require.Equal(t, 2, report.Fuzzy.Count)
	assert.Equal(t, "b", report.Fuzzy.Results[0].ID)
	assert.Equal(t, "a", report.Fuzzy.Results[1].ID)

	// Rescoring happens on clones; the lexical records are untouched.
	assert.Zero(t, report.Lexical.Results[0].FuzzyScore)
	assert.Greater(t, report.Fuzzy.Results[0].FuzzyScore, report.Fuzzy.Results[1].FuzzyScore)
}

func TestSearch_QueryRouting(t *testing.T) {
	repo := &stubRepository{products: catalogFixture()}
	index := &stubIndex{}
	searcher, err := NewSearcher(repo, index)
	require.NoError(t, err)

	report, err := searcher.Search(context.Background(), "ChocolateBar,Wedel")
	require.NoError(t, err)

	// The text backend sees the normalized form, the vector index the raw.
	assert.Equal(t, "chocolate bar wedel", repo.gotQuery)
	assert.Equal(t, DefaultLexicalLimit, repo.gotLimit)
	assert.Equal(t, "ChocolateBar,Wedel", index.gotQuery)

	assert.Equal(t, "ChocolateBar,Wedel", report.InputString)
	assert.Equal(t, "chocolate bar wedel", report.FormattedInput)
}

func TestSearch_ComputesGivenNames(t *testing.T) {
	products := []*core.Product{
		{ID: "named", Name: core.MultipleNames([]string{"Nutella", "Chocolate Spread"}), TextScore: 2},
		{ID: "nameless", TextScore: 1},
	}
	searcher, err := NewSearcher(&stubRepository{products: products}, nil)
	require.NoError(t, err)

	report, err := searcher.Search(context.Background(), "nutella")
	require.NoError(t, err)

	assert.Equal(t, "Nutella", report.Lexical.Results[0].GivenName)
	assert.Equal(t, core.UnknownName, report.Lexical.Results[1].GivenName)
}

func TestSearch_RejectedQueryDegradesToEmptyPaths(t *testing.T) {
	repo := &stubRepository{err: fmt.Errorf("bad operator: %w", storage.ErrQueryRejected)}
	index := &stubIndex{hits: []core.SemanticHit{{ID: "instant_noodles", Score: 0.9}}}
	searcher, err := NewSearcher(repo, index)
	require.NoError(t, err)

	report, err := searcher.Search(context.Background(), "noodles")
	require.NoError(t, err)

	assert.Zero(t, report.Lexical.Count)
	assert.Zero(t, report.Fuzzy.Count)
	require.Equal(t, 1, report.Semantic.Count)
	assert.Equal(t, "instant_noodles", report.Semantic.Results[0].ID)
}

func TestSearch_ConnectionErrorAborts(t *testing.T) {
	repoErr := errors.New("connection reset")
	searcher, err := NewSearcher(&stubRepository{err: repoErr}, nil)
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), "milk")
	assert.ErrorIs(t, err, repoErr)
}

func TestSearch_SemanticFailureDegrades(t *testing.T) {
	repo := &stubRepository{products: catalogFixture()}
	index := &stubIndex{err: errors.New("index unavailable")}
	searcher, err := NewSearcher(repo, index)
	require.NoError(t, err)

	report, err := searcher.Search(context.Background(), "chocolate")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Lexical.Count)
	assert.Zero(t, report.Semantic.Count)
}

func TestSearch_NilIndexMeansEmptySemanticPath(t *testing.T) {
	searcher, err := NewSearcher(&stubRepository{products: catalogFixture()}, nil)
	require.NoError(t, err)

	report, err := searcher.Search(context.Background(), "chocolate")
	require.NoError(t, err)
	assert.Zero(t, report.Semantic.Count)
}

// recordingMonitor captures the pipeline callbacks in order.
type recordingMonitor struct {
	stages []string
}

func (m *recordingMonitor) Start(core.Query)                   { m.stages = append(m.stages, "start") }
func (m *recordingMonitor) AfterLexicalSearch([]*core.Product) { m.stages = append(m.stages, "lexical") }
func (m *recordingMonitor) AfterFuzzyRescore([]*core.Product)  { m.stages = append(m.stages, "fuzzy") }
func (m *recordingMonitor) AfterSemanticSearch([]core.SemanticHit) {
	m.stages = append(m.stages, "semantic")
}
func (m *recordingMonitor) Finish(*core.Report) { m.stages = append(m.stages, "finish") }

func TestSearchWithMonitor_CallbackOrder(t *testing.T) {
	searcher, err := NewSearcher(&stubRepository{products: catalogFixture()}, &stubIndex{})
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	_, err = searcher.SearchWithMonitor(context.Background(), "chocolate", monitor)
	require.NoError(t, err)

	assert.Equal(t, []string{"start", "lexical", "fuzzy", "semantic", "finish"}, monitor.stages)
}
