package types

// Span is a contiguous, zero-based, end-exclusive line range within a buffer.
type Span struct {
	Start int // First line of the range
	End   int // One past the last line of the range
}

// CaptureKind classifies a structural definition.
type CaptureKind int

const (
	KindModule CaptureKind = iota
	KindClass
	KindMethod
)

func (k CaptureKind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindMethod:
		return "method"
	}
	return "unknown"
}

// Capture is one named definition reported by a structural query.
type Capture struct {
	Name string      // Definition name, empty when the grammar exposes none
	Kind CaptureKind // module, class or method
	Span Span        // Line range covered by the definition
}

// ContextItem is the unit of text submitted for embedding: either a
// buffer's full content or its outline.
type ContextItem struct {
	Content  string // Full text or outline
	Filename string // Buffer name
	Filetype string // Language identifier (e.g. "ruby", "go")
}

// Embedding is a fixed-length vector produced by the embedding capability.
// Two embeddings are only comparable when produced by the same model.
type Embedding struct {
	Vector []float32
}

// Absent reports whether the capability produced no vector for the item.
func (e Embedding) Absent() bool {
	return len(e.Vector) == 0
}

// ScoredItem is a ranked context item annotated with its cosine similarity
// to the query embedding.
type ScoredItem struct {
	Item      ContextItem
	Embedding Embedding
	Score     float32 // Cosine similarity in [-1, 1]
}

// Scope selects which buffers a retrieval considers.
type Scope int

const (
	// ScopeBuffer considers only the active buffer.
	ScopeBuffer Scope = iota
	// ScopeBuffers considers every listed buffer.
	ScopeBuffers
)

func (s Scope) String() string {
	if s == ScopeBuffers {
		return "buffers"
	}
	return "buffer"
}
