// Package ranking picks the resume bullet most semantically similar to a
// keyword, using embedding vectors and cosine similarity.
package ranking

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds parallel embedding calls per ranking request.
const defaultConcurrency = 4

// Embedder produces an embedding vector for a piece of text.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Ranker scores candidate bullets against a keyword by embedding both and
// comparing with cosine similarity.
type Ranker struct {
	embedder    Embedder
	concurrency int
}

// Option customizes a Ranker.
type Option func(*Ranker)

// WithConcurrency sets how many embedding calls may run in parallel.
func WithConcurrency(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRanker creates a Ranker backed by the given embedder.
func NewRanker(embedder Embedder, opts ...Option) *Ranker {
	r := &Ranker{embedder: embedder, concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BestBullet returns the index of the candidate most similar to the
// keyword and its similarity score on a 0-100 scale. Ties resolve to the
// earliest candidate. An empty candidate list, or one where no candidate
// scores above zero, returns index -1 with a nil error; any embedding
// failure fails the whole ranking.
func (r *Ranker) BestBullet(ctx context.Context, keyword string, candidates []string) (int, float64, error) {
	if len(candidates) == 0 {
		return -1, 0, nil
	}

	keywordVec, err := r.embedder.EmbedText(ctx, keyword)
	if err != nil {
		return -1, 0, fmt.Errorf("failed to embed keyword %q: %w", keyword, err)
	}

	vectors := make([][]float32, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			vec, err := r.embedder.EmbedText(gctx, candidate)
			if err != nil {
				return fmt.Errorf("failed to embed candidate %d: %w", i, err)
			}
			vectors[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return -1, 0, err
	}

	bestIdx := -1
	bestScore := 0.0
	for i, vec := range vectors {
		score := CosineSimilarity(keywordVec, vec) * 100
		if score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	return bestIdx, bestScore, nil
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or a zero vector yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
