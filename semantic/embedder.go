package semantic

import (
	"context"

	"github.com/pantrylabs/foodsearch/ai"
)

// storeEmbedder adapts an ai.Embedder to the embeddings.Embedder interface
// the langchaingo vector store expects.
type storeEmbedder struct {
	inner ai.Embedder
}

func (e *storeEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.inner.EmbedTexts(ctx, texts)
}

func (e *storeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.inner.EmbedText(ctx, text)
}
