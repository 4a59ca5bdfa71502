package buffer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// filetypes maps file extensions to language identifiers, mirroring how an
// editor derives a filetype from a file name.
var filetypes = map[string]string{
	".go":  "go",
	".rb":  "ruby",
	".py":  "python",
	".js":  "javascript",
	".mjs": "javascript",
}

// FiletypeForPath derives the language identifier for a file path. Unknown
// extensions map to the bare extension so unsupported languages still carry
// a stable identifier.
func FiletypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ft, ok := filetypes[ext]; ok {
		return ft
	}
	return strings.TrimPrefix(ext, ".")
}

// FileBuffer is a Buffer backed by a file read once at construction.
type FileBuffer struct {
	name     string
	filetype string
	text     string
}

// ReadFile loads path into a FileBuffer.
func ReadFile(path string) (*FileBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return &FileBuffer{
		name:     path,
		filetype: FiletypeForPath(path),
		text:     string(data),
	}, nil
}

// NewFileBuffer wraps already-loaded text as a Buffer.
func NewFileBuffer(name, filetype, text string) *FileBuffer {
	return &FileBuffer{name: name, filetype: filetype, text: text}
}

func (b *FileBuffer) Text() string     { return b.text }
func (b *FileBuffer) Name() string     { return b.name }
func (b *FileBuffer) Filetype() string { return b.filetype }

// DirSource is a Source that treats every source file under a directory as
// a listed buffer.
type DirSource struct {
	buffers []Buffer
}

// NewDirSource walks root and loads every file with a known filetype.
func NewDirSource(root string) (*DirSource, error) {
	var buffers []Buffer

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories such as .git
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := filetypes[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		buf, err := ReadFile(path)
		if err != nil {
			return err
		}
		buffers = append(buffers, buf)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}

	return &DirSource{buffers: buffers}, nil
}

// Buffers returns the snapshot taken when the source was built.
func (s *DirSource) Buffers() []Buffer {
	return s.buffers
}

// Lookup finds a buffer by name.
func (s *DirSource) Lookup(name string) (Buffer, bool) {
	for _, b := range s.buffers {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}
