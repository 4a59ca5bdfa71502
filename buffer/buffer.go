// Package buffer abstracts the source of candidate text. The retrieval
// core only reads buffers; how they are managed is a collaborator concern.
package buffer

// Buffer is one candidate source of text.
type Buffer interface {
	// Text returns the buffer's full content.
	Text() string
	// Name returns the buffer's display name, unique within a Source.
	Name() string
	// Filetype returns the buffer's language identifier.
	Filetype() string
}

// Source enumerates the candidate buffers available at collection time.
// The returned slice is a snapshot, not a live view.
type Source interface {
	Buffers() []Buffer
}
