package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oskarkook/ctxrank/types"
)

// Cached is an Embedder that keeps recently computed vectors in an LRU
// cache keyed by item content, so unchanged buffers are not re-embedded
// across retrievals. Per-item absence is never cached; a whole-batch error
// from the inner embedder is returned unchanged.
type Cached struct {
	inner Embedder
	cache *lru.Cache[string, []float32]
}

// NewCached wraps inner with a cache holding up to size entries.
func NewCached(inner Embedder, size int) (*Cached, error) {
	cache, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("error creating embedding cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

func cacheKey(item types.ContextItem) string {
	sum := sha256.Sum256([]byte(item.Filetype + "\x00" + item.Content))
	return hex.EncodeToString(sum[:])
}

// Embed serves cache hits locally and forwards only the misses to the
// inner embedder as one batch.
func (c *Cached) Embed(ctx context.Context, items []types.ContextItem) ([]types.Embedding, error) {
	out := make([]types.Embedding, len(items))

	misses := make([]types.ContextItem, 0, len(items))
	positions := make([]int, 0, len(items))
	for i, item := range items {
		if vector, ok := c.cache.Get(cacheKey(item)); ok {
			out[i] = types.Embedding{Vector: vector}
			continue
		}
		misses = append(misses, item)
		positions = append(positions, i)
	}
	if len(misses) == 0 {
		return out, nil
	}

	embedded, err := c.inner.Embed(ctx, misses)
	if err != nil {
		return nil, err
	}
	for i, emb := range embedded {
		if i >= len(positions) {
			break
		}
		out[positions[i]] = emb
		if !emb.Absent() {
			c.cache.Add(cacheKey(misses[i]), emb.Vector)
		}
	}

	return out, nil
}

// Len reports the number of cached vectors.
func (c *Cached) Len() int {
	return c.cache.Len()
}
