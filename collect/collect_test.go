package collect_test

import (
	"strings"
	"testing"

	"github.com/oskarkook/ctxrank/buffer"
	"github.com/oskarkook/ctxrank/collect"
	"github.com/oskarkook/ctxrank/types"
)

type fakeSource struct {
	buffers []buffer.Buffer
}

func (s *fakeSource) Buffers() []buffer.Buffer { return s.buffers }

// prefixOutliner outlines every buffer whose filetype it knows by
// prefixing its text, and reports absence for the rest.
type prefixOutliner struct {
	supported map[string]bool
}

func (o *prefixOutliner) Build(buf buffer.Buffer) (string, bool) {
	if !o.supported[buf.Filetype()] {
		return "", false
	}
	return "outline of " + buf.Name(), true
}

func newCollector(src buffer.Source, supported ...string) *collect.Collector {
	m := make(map[string]bool)
	for _, ft := range supported {
		m[ft] = true
	}
	return &collect.Collector{Source: src, Outliner: &prefixOutliner{supported: m}}
}

func TestCollectSingleBufferScope(t *testing.T) {
	active := buffer.NewFileBuffer("main.rb", "ruby", "def foo; end")
	other := buffer.NewFileBuffer("other.rb", "ruby", "def bar; end")
	c := newCollector(&fakeSource{buffers: []buffer.Buffer{active, other}}, "ruby")

	items := c.Collect(types.ScopeBuffer, active)
	if len(items) != 1 {
		t.Fatalf("Collect() returned %d items, want 1", len(items))
	}
	if items[0].Content != "def foo; end" {
		t.Errorf("Collect() active content = %q, want full text", items[0].Content)
	}
	if items[0].Filename != "main.rb" || items[0].Filetype != "ruby" {
		t.Errorf("Collect() item metadata = %+v", items[0])
	}
}

func TestCollectAllBuffersUsesOutlines(t *testing.T) {
	active := buffer.NewFileBuffer("main.rb", "ruby", "def foo; end")
	other := buffer.NewFileBuffer("other.rb", "ruby", "def bar; end")
	c := newCollector(&fakeSource{buffers: []buffer.Buffer{active, other}}, "ruby")

	items := c.Collect(types.ScopeBuffers, active)
	if len(items) != 2 {
		t.Fatalf("Collect() returned %d items, want 2", len(items))
	}
	if items[0].Content != "def foo; end" {
		t.Errorf("Collect() active content = %q, want full text, never its outline", items[0].Content)
	}
	if !strings.HasPrefix(items[1].Content, "outline of") {
		t.Errorf("Collect() other content = %q, want outline", items[1].Content)
	}
}

func TestCollectDropsBuffersWithoutOutline(t *testing.T) {
	active := buffer.NewFileBuffer("main.rb", "ruby", "def foo; end")
	outlinable := buffer.NewFileBuffer("lib.rb", "ruby", "def bar; end")
	unsupported := buffer.NewFileBuffer("notes.txt", "text", "free text")
	c := newCollector(&fakeSource{buffers: []buffer.Buffer{active, outlinable, unsupported}}, "ruby")

	items := c.Collect(types.ScopeBuffers, active)
	if len(items) != 2 {
		t.Fatalf("Collect() returned %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Filename == "notes.txt" {
			t.Errorf("Collect() kept a buffer with no outline: %+v", item)
		}
	}
}

func TestCollectNoActiveBuffer(t *testing.T) {
	c := newCollector(&fakeSource{}, "ruby")
	if items := c.Collect(types.ScopeBuffer, nil); len(items) != 0 {
		t.Errorf("Collect() returned %d items without an active buffer", len(items))
	}
}

func TestCollectEmptySource(t *testing.T) {
	active := buffer.NewFileBuffer("main.rb", "ruby", "def foo; end")
	c := newCollector(&fakeSource{}, "ruby")

	items := c.Collect(types.ScopeBuffers, active)
	if len(items) != 1 {
		t.Errorf("Collect() returned %d items, want only the active buffer", len(items))
	}
}
