package outline

import (
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

// language pairs a grammar with its compiled definition query.
type language struct {
	grammar *tree_sitter.Language
	query   *tree_sitter.Query
	// captureKinds maps the query's capture indexes to definition kinds.
	captureNames []string
}

// languages is the structural-query registry, keyed by filetype. It is
// populated once at init and never mutated afterwards.
var languages = map[string]*language{}

const rubyQuery = `
(module) @module
(class) @class
(singleton_class) @class
(method) @method
(singleton_method) @method
`

const goQuery = `
(type_declaration) @class
(function_declaration) @method
(method_declaration) @method
`

const pythonQuery = `
(class_definition) @class
(function_definition) @method
`

const javascriptQuery = `
(class_declaration) @class
(function_declaration) @method
(generator_function_declaration) @method
(method_definition) @method
`

func register(filetype string, grammar unsafe.Pointer, pattern string) {
	lang := tree_sitter.NewLanguage(grammar)
	query, err := tree_sitter.NewQuery(lang, pattern)
	if err != nil {
		panic("outline: invalid query for " + filetype + ": " + err.Error())
	}
	languages[filetype] = &language{
		grammar:      lang,
		query:        query,
		captureNames: query.CaptureNames(),
	}
}

func init() {
	register("ruby", tree_sitter_ruby.Language(), rubyQuery)
	register("go", tree_sitter_go.Language(), goQuery)
	register("python", tree_sitter_python.Language(), pythonQuery)
	register("javascript", tree_sitter_javascript.Language(), javascriptQuery)
}

// Supported reports whether a structural query is registered for filetype.
func Supported(filetype string) bool {
	_, ok := languages[filetype]
	return ok
}

// Filetypes lists the registered language identifiers.
func Filetypes() []string {
	out := make([]string, 0, len(languages))
	for ft := range languages {
		out = append(out, ft)
	}
	return out
}
