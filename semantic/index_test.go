package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/schema"

	"github.com/pantrylabs/foodsearch/ai/mock"
)

func TestNewIndex_RequiresEmbedder(t *testing.T) {
	_, err := NewIndex(nil, "key", "host", "")
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestNewIndex_RequiresCredentials(t *testing.T) {
	embedder := mock.NewMockEmbedder()

	_, err := NewIndex(embedder, "", "host", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewIndex(embedder, "key", "", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestHitFromDocument_WithMetadata(t *testing.T) {
	doc := schema.Document{
		PageContent: "Food > Pasta > Instant noodles",
		Score:       0.87,
		Metadata: map[string]any{
			"category_id":   "instant_noodles",
			"category_name": "Instant noodles",
		},
	}

	hit := hitFromDocument(doc)

	assert.Equal(t, "instant_noodles", hit.ID)
	assert.Equal(t, "Instant noodles", hit.GivenName)
	assert.Equal(t, "Food > Pasta > Instant noodles", hit.Text)
	assert.InDelta(t, 0.87, float64(hit.Score), 1e-6)
}

func TestHitFromDocument_FallsBackToPathText(t *testing.T) {
	doc := schema.Document{
		PageContent: "Dried Mango",
		Score:       0.5,
	}

	hit := hitFromDocument(doc)

	assert.Equal(t, "dried_mango", hit.ID)
	assert.Equal(t, "dried mango", hit.GivenName)
}
