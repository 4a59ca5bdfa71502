// Package outline compresses a source buffer into its definition skeleton:
// only the lines that start a named module, class or method definition are
// kept, with elision markers for the regions in between.
package outline

import (
	"fmt"
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/oskarkook/ctxrank/buffer"
	"github.com/oskarkook/ctxrank/types"
)

const (
	// elision marks a run of omitted lines.
	elision = "..."
	// definitionPrefix marks a kept definition line.
	definitionPrefix = "> "
)

// Build resolves buf's structural language and produces its outline. The
// second return value is false when no structural query is registered for
// the buffer's filetype or when no definitions matched; that is an absence,
// not an error, and callers decide how to fall back.
func Build(buf buffer.Buffer) (string, bool) {
	lang, ok := languages[buf.Filetype()]
	if !ok {
		return "", false
	}
	source := []byte(buf.Text())
	captures, err := runQuery(lang, source)
	if err != nil || len(captures) == 0 {
		return "", false
	}
	return render(strings.Split(buf.Text(), "\n"), captures)
}

// Captures runs the registered structural query for filetype over source.
// The result is unordered; render sorts by start row.
func Captures(filetype string, source []byte) ([]types.Capture, error) {
	lang, ok := languages[filetype]
	if !ok {
		return nil, fmt.Errorf("no structural query registered for %q", filetype)
	}
	return runQuery(lang, source)
}

func runQuery(lang *language, source []byte) ([]types.Capture, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(lang.grammar); err != nil {
		return nil, fmt.Errorf("error setting language: %w", err)
	}
	tree := parser.Parse(source, nil)
	defer tree.Close()

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(lang.query, tree.RootNode(), source)

	var out []types.Capture
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			kind, ok := kindFor(lang.captureNames[capture.Index])
			if !ok {
				continue
			}
			node := capture.Node
			out = append(out, types.Capture{
				Name: definitionName(&node, source),
				Kind: kind,
				Span: types.Span{
					Start: int(node.StartPosition().Row),
					End:   int(node.EndPosition().Row) + 1,
				},
			})
		}
	}
	return out, nil
}

func kindFor(captureName string) (types.CaptureKind, bool) {
	switch captureName {
	case "module":
		return types.KindModule, true
	case "class":
		return types.KindClass, true
	case "method":
		return types.KindMethod, true
	}
	return 0, false
}

// definitionName extracts the definition's name via the grammar's "name"
// field. Not every grammar exposes one; an empty name is fine.
func definitionName(node *tree_sitter.Node, source []byte) string {
	name := node.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	return string(source[name.StartByte():name.EndByte()])
}

// render joins the kept definition lines into the outline. Captures are
// processed in ascending start-row order regardless of input order; a gap
// between two kept rows produces exactly one elision marker, and a capture
// on the same or adjacent row as the previous one produces none. The
// second return value is false when nothing was kept.
func render(lines []string, captures []types.Capture) (string, bool) {
	sorted := make([]types.Capture, len(captures))
	copy(sorted, captures)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	var out []string
	previous := -1
	for _, capture := range sorted {
		row := capture.Span.Start
		if row < 0 || row >= len(lines) {
			continue
		}
		if row > previous+1 {
			out = append(out, elision)
		}
		out = append(out, definitionPrefix+lines[row])
		previous = row
	}
	if len(out) == 0 {
		return "", false
	}
	if previous != len(lines)-1 {
		out = append(out, elision)
	}
	return strings.Join(out, "\n"), true
}
