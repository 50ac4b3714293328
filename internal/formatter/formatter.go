package formatter

import (
	"io"
	"strings"

	"github.com/KimNorgaard/htmlisp/ast"
)

// MaxDepth is the deepest indentation the formatter writes. Lines nested
// further are indented as if they were at MaxDepth.
const MaxDepth = 1 << 16

// Formatter writes an HTMLisp tree to an output stream as HTML.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// New returns a formatter that writes to w. An empty indent produces compact
// output with no whitespace between elements; otherwise every line is
// prefixed with indent repeated once per nesting level, starting at depth.
// depth is clamped to the range 0..MaxDepth.
func New(w io.Writer, indent string, depth int) *Formatter {
	return &Formatter{w: w, indent: indent, depth: min(max(depth, 0), MaxDepth)}
}

// Format writes the HTML representation of node to the writer. Only write
// errors can make it fail.
func (f *Formatter) Format(node ast.Node) error {
	if f.indent == "" {
		return f.writeCompact(node)
	}
	return f.writePretty(node)
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent() error {
	if f.depth == 0 {
		return nil
	}
	return f.write(strings.Repeat(f.indent, min(f.depth, MaxDepth)))
}

func (f *Formatter) writeOpen(t *ast.Tag) error {
	return f.write("<" + t.Name + ast.AttributeBlock(t.Attributes) + ">")
}

func (f *Formatter) writeClose(t *ast.Tag) error {
	return f.write("</" + t.Name + ">")
}

func (f *Formatter) writeCompact(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Text:
		return f.write(n.Value)

	case *ast.Tag:
		if err := f.writeOpen(n); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := f.writeCompact(c); err != nil {
				return err
			}
		}
		return f.writeClose(n)
	}
	return nil
}

func (f *Formatter) writePretty(node ast.Node) error {
	if err := f.writeIndent(); err != nil {
		return err
	}

	switch n := node.(type) {
	case *ast.Text:
		return f.write(n.Value)

	case *ast.Tag:
		if err := f.writeOpen(n); err != nil {
			return err
		}
		if len(n.Children) > 0 {
			f.depth++
			for _, c := range n.Children {
				if err := f.write("\n"); err != nil {
					return err
				}
				if err := f.writePretty(c); err != nil {
					return err
				}
			}
			f.depth--
			if err := f.write("\n"); err != nil {
				return err
			}
			if err := f.writeIndent(); err != nil {
				return err
			}
		}
		return f.writeClose(n)
	}
	return nil
}
