// Package finder sequences a retrieval: collect candidates, embed them,
// embed the query, rank, deliver. Each step is an explicit phase and a
// failed embedding batch terminates the whole retrieval.
package finder

import (
	"context"
	"fmt"

	"github.com/oskarkook/ctxrank/buffer"
	"github.com/oskarkook/ctxrank/embedding"
	"github.com/oskarkook/ctxrank/logger"
	"github.com/oskarkook/ctxrank/rank"
	"github.com/oskarkook/ctxrank/types"
)

// DefaultTopN caps the ranked result handed to the downstream consumer.
const DefaultTopN = 20

// phase names one step of the retrieval state machine.
type phase int

const (
	phaseIdle phase = iota
	phaseCollecting
	phaseEmbeddingCandidates
	phaseEmbeddingQuery
	phaseRanking
	phaseDone
	phaseFailed
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseCollecting:
		return "collecting candidates"
	case phaseEmbeddingCandidates:
		return "embedding candidates"
	case phaseEmbeddingQuery:
		return "embedding query"
	case phaseRanking:
		return "ranking"
	case phaseDone:
		return "done"
	case phaseFailed:
		return "failed"
	}
	return "unknown"
}

// Collector builds the candidate set for one retrieval.
type Collector interface {
	Collect(scope types.Scope, active buffer.Buffer) []types.ContextItem
}

// Request describes one retrieval.
type Request struct {
	Scope     types.Scope
	Prompt    string
	Selection string        // Selected text, optional
	Active    buffer.Buffer // Buffer the query is being asked about
}

// Finder runs retrievals. It holds no state between calls; every entity is
// request-scoped.
type Finder struct {
	Collector Collector
	Embedder  embedding.Embedder
	TopN      int
}

// New creates a Finder with the default result bound.
func New(collector Collector, embedder embedding.Embedder) *Finder {
	return &Finder{Collector: collector, Embedder: embedder, TopN: DefaultTopN}
}

// Find returns the context items most related to the request, highest
// score first. An empty result with a nil error means nothing qualified;
// a non-nil error means an embedding batch failed and no partial result
// exists.
func (f *Finder) Find(ctx context.Context, req Request) ([]types.ScoredItem, error) {
	step := func(p phase) { logger.Debug("find: %s", p) }

	step(phaseCollecting)
	items := f.Collector.Collect(req.Scope, req.Active)
	if len(items) == 0 {
		step(phaseDone)
		return nil, nil
	}

	step(phaseEmbeddingCandidates)
	embedded, err := f.Embedder.Embed(ctx, items)
	if err != nil {
		step(phaseFailed)
		return nil, fmt.Errorf("error embedding candidates: %w", err)
	}
	corpus := make([]rank.Candidate, 0, len(items))
	for i, item := range items {
		if i >= len(embedded) || embedded[i].Absent() {
			continue
		}
		corpus = append(corpus, rank.Candidate{Item: item, Embedding: embedded[i]})
	}
	if len(corpus) == 0 {
		step(phaseDone)
		return nil, nil
	}

	// The query goes out as its own batch, strictly after the candidate
	// batch: the candidate set stays reusable independent of query
	// phrasing and the query's latency does not grow with it.
	step(phaseEmbeddingQuery)
	queryEmbeddings, err := f.Embedder.Embed(ctx, []types.ContextItem{queryItem(req)})
	if err != nil {
		step(phaseFailed)
		return nil, fmt.Errorf("error embedding query: %w", err)
	}
	if len(queryEmbeddings) == 0 || queryEmbeddings[0].Absent() {
		// The query itself could not be embedded; empty, not fatal.
		step(phaseDone)
		return nil, nil
	}

	step(phaseRanking)
	topN := f.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	ranked := rank.Rank(queryEmbeddings[0], corpus, topN)

	step(phaseDone)
	return ranked, nil
}

// FindForQuery runs Find and delivers the outcome through exactly one of
// the two callbacks.
func (f *Finder) FindForQuery(ctx context.Context, req Request, onResult func([]types.ScoredItem), onError func(error)) {
	ranked, err := f.Find(ctx, req)
	if err != nil {
		onError(err)
		return
	}
	onResult(ranked)
}

// queryItem shapes the request as the single context item of the query
// batch.
func queryItem(req Request) types.ContextItem {
	content := req.Prompt
	if req.Selection != "" {
		content = content + "\n" + req.Selection
	}
	item := types.ContextItem{Content: content}
	if req.Active != nil {
		item.Filename = req.Active.Name()
		item.Filetype = req.Active.Filetype()
	}
	return item
}
