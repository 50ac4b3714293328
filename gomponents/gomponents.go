// Package gomponents converts HTMLisp trees into gomponents nodes, so parsed
// documents can be embedded in pages built with maragu.dev/gomponents.
//
// The conversion follows gomponents rendering rules rather than those of
// htmlisp.Compact: attribute values are escaped, attributes are separated
// by a single space, and void elements such as br or img get no end tag.
// Text is inserted unescaped, as htmlisp does.
package gomponents

import (
	"github.com/KimNorgaard/htmlisp/ast"
	g "maragu.dev/gomponents"
)

// Lower returns the gomponents equivalent of node.
func Lower(node ast.Node) g.Node {
	switch n := node.(type) {
	case *ast.Text:
		return g.Raw(n.Value)
	case *ast.Tag:
		children := make([]g.Node, 0, len(n.Attributes)+len(n.Children))
		for _, a := range n.Attributes {
			children = append(children, g.Attr(a.Name, a.Value))
		}
		for _, c := range n.Children {
			children = append(children, Lower(c))
		}
		return g.El(n.Name, children...)
	}
	return nil
}

// LowerAll lowers each node and groups the results.
func LowerAll(nodes []ast.Node) g.Group {
	group := make(g.Group, 0, len(nodes))
	for _, n := range nodes {
		group = append(group, Lower(n))
	}
	return group
}
