// Package rank orders context items by their cosine similarity to a query
// embedding.
package rank

import (
	"math"
	"sort"

	"github.com/oskarkook/ctxrank/types"
)

// Candidate pairs a context item with its embedding.
type Candidate struct {
	Item      types.ContextItem
	Embedding types.Embedding
}

// Similarity calculates the cosine similarity between two vectors. The dot
// product and both squared magnitudes accumulate in a single pass; vectors
// are not assumed to be normalized. A zero-magnitude vector yields NaN.
func Similarity(a, b []float32) float32 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return float32(math.NaN())
	}

	var dotProduct float32
	var normA float32
	var normB float32

	for i := 0; i < len(a); i++ {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	return dotProduct / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB))))
}

// Rank returns the topN candidates most related to query, each annotated
// with its score. Scores sort descending; equal scores keep their input
// order, and non-finite scores (zero-magnitude or mismatched vectors) sort
// after every finite score.
func Rank(query types.Embedding, corpus []Candidate, topN int) []types.ScoredItem {
	if topN < 0 {
		topN = 0
	}

	scored := make([]types.ScoredItem, 0, len(corpus))
	for _, c := range corpus {
		scored = append(scored, types.ScoredItem{
			Item:      c.Item,
			Embedding: c.Embedding,
			Score:     Similarity(query.Vector, c.Embedding.Vector),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		fi, fj := finite(scored[i].Score), finite(scored[j].Score)
		if fi != fj {
			return fi
		}
		if !fi {
			return false
		}
		return scored[i].Score > scored[j].Score
	})

	if topN < len(scored) {
		scored = scored[:topN]
	}
	return scored
}

func finite(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
