package buffer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oskarkook/ctxrank/buffer"
)

func TestFiletypeForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"app/models/user.rb", "ruby"},
		{"main.go", "go"},
		{"scripts/run.py", "python"},
		{"web/index.js", "javascript"},
		{"web/worker.mjs", "javascript"},
		{"README.md", "md"},
		{"Makefile", ""},
	}
	for _, tt := range tests {
		if got := buffer.FiletypeForPath(tt.path); got != tt.want {
			t.Errorf("FiletypeForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.rb")
	if err := os.WriteFile(path, []byte("def foo; end\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	buf, err := buffer.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if buf.Text() != "def foo; end\n" {
		t.Errorf("Text() = %q", buf.Text())
	}
	if buf.Name() != path {
		t.Errorf("Name() = %q, want %q", buf.Name(), path)
	}
	if buf.Filetype() != "ruby" {
		t.Errorf("Filetype() = %q, want %q", buf.Filetype(), "ruby")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := buffer.ReadFile(filepath.Join(t.TempDir(), "absent.rb")); err == nil {
		t.Errorf("ReadFile() on a missing file succeeded, want error")
	}
}

func TestNewDirSource(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.rb":        "def a; end",
		"sub/b.py":    "def b(): pass",
		"notes.txt":   "not a source file",
		".git/config": "[core]",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing file: %v", err)
		}
	}

	src, err := buffer.NewDirSource(dir)
	if err != nil {
		t.Fatalf("NewDirSource() error = %v", err)
	}

	buffers := src.Buffers()
	if len(buffers) != 2 {
		t.Fatalf("Buffers() returned %d buffers, want 2", len(buffers))
	}
	for _, b := range buffers {
		switch b.Filetype() {
		case "ruby", "python":
		default:
			t.Errorf("Buffers() includes unexpected filetype %q for %q", b.Filetype(), b.Name())
		}
	}

	if _, ok := src.Lookup(filepath.Join(dir, "a.rb")); !ok {
		t.Errorf("Lookup() could not find a listed buffer")
	}
	if _, ok := src.Lookup("missing.rb"); ok {
		t.Errorf("Lookup() found a buffer that is not listed")
	}
}
