// Package collect enumerates candidate buffers and decides, per buffer,
// whether its full content or its compressed outline enters the context.
package collect

import (
	"github.com/oskarkook/ctxrank/buffer"
	"github.com/oskarkook/ctxrank/outline"
	"github.com/oskarkook/ctxrank/types"
)

// Outliner compresses a buffer into its definition skeleton. The bool is
// false when no outline could be built.
type Outliner interface {
	Build(buf buffer.Buffer) (string, bool)
}

// treeSitterOutliner adapts the outline package's registry-backed extractor.
type treeSitterOutliner struct{}

func (treeSitterOutliner) Build(buf buffer.Buffer) (string, bool) {
	return outline.Build(buf)
}

// DefaultOutliner returns the tree-sitter backed Outliner.
func DefaultOutliner() Outliner {
	return treeSitterOutliner{}
}

// Collector builds the candidate set for a retrieval.
type Collector struct {
	Source   buffer.Source
	Outliner Outliner
}

// New creates a Collector over source using the default outliner.
func New(source buffer.Source) *Collector {
	return &Collector{Source: source, Outliner: DefaultOutliner()}
}

// Collect returns the context items for one retrieval. The active buffer
// always contributes its full text. With types.ScopeBuffers every other
// listed buffer contributes its outline; buffers without an outline are
// dropped entirely to bound payload size, never substituted with full
// content. An empty result is a valid outcome, not an error.
func (c *Collector) Collect(scope types.Scope, active buffer.Buffer) []types.ContextItem {
	var items []types.ContextItem
	if active != nil {
		items = append(items, types.ContextItem{
			Content:  active.Text(),
			Filename: active.Name(),
			Filetype: active.Filetype(),
		})
	}
	if scope != types.ScopeBuffers {
		return items
	}

	for _, buf := range c.Source.Buffers() {
		if active != nil && buf.Name() == active.Name() {
			continue
		}
		content, ok := c.Outliner.Build(buf)
		if !ok {
			continue
		}
		items = append(items, types.ContextItem{
			Content:  content,
			Filename: buf.Name(),
			Filetype: buf.Filetype(),
		})
	}
	return items
}
