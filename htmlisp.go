package htmlisp

import (
	"io"
	"strings"

	"github.com/KimNorgaard/htmlisp/ast"
	"github.com/KimNorgaard/htmlisp/internal/formatter"
	"github.com/KimNorgaard/htmlisp/internal/lexer"
	"github.com/KimNorgaard/htmlisp/internal/parser"
)

// Indent is the unit of indentation used by pretty output.
const Indent = "\t"

// MaxIndentDepth is the deepest indentation Pretty writes.
const MaxIndentDepth = formatter.MaxDepth

// Parse parses src into a single node. The document must start with either
// a tag or a string literal; anything after the first node is ignored.
// On failure the error is a *ParseError and the node is nil.
//
// Bytes that are not valid UTF-8 are not rejected. Each one is read as
// U+FFFD and ends up in the output as that replacement character.
func Parse(src string, opts ...Option) (ast.Node, error) {
	return ParseReader(strings.NewReader(src), opts...)
}

// ParseReader is like Parse but reads the source from r. If r fails with an
// error other than io.EOF, that error is returned wrapped instead of the
// *ParseError it would otherwise cause.
func ParseReader(r io.Reader, opts ...Option) (ast.Node, error) {
	o := options{}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	p := parser.New(lexer.New(r), parser.Config{
		MaxDepth:     o.maxDepth,
		LenientClose: o.lenientClose,
	})
	return p.Parse()
}

// Compact returns node as HTML on a single line with no whitespace added
// between elements. Text and attribute values are written verbatim.
func Compact(node ast.Node) string {
	var buf strings.Builder
	_ = formatter.New(&buf, "", 0).Format(node) // strings.Builder never fails
	return buf.String()
}

// Pretty returns node as indented HTML. Every line is prefixed with one tab
// per level, starting at depth. Tags without children stay on one line.
// Indentation stops growing at MaxIndentDepth levels, so any depth is
// accepted.
func Pretty(node ast.Node, depth uint) string {
	var buf strings.Builder
	_ = formatter.New(&buf, Indent, int(min(depth, MaxIndentDepth))).Format(node) // strings.Builder never fails
	return buf.String()
}

// Render writes node to w, pretty printed at depth 0 if pretty is set and
// compact otherwise. It only fails if w does.
func Render(w io.Writer, node ast.Node, pretty bool) error {
	indent := ""
	if pretty {
		indent = Indent
	}
	return formatter.New(w, indent, 0).Format(node)
}
