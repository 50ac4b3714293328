package ast

import "strings"

// Node is an element of an HTMLisp document tree: either *Text or *Tag.
type Node interface {
	// String returns the compact HTML rendering of the node.
	String() string
	node()
}

// Text is a string literal with escapes already resolved.
type Text struct {
	Value string
}

func (t *Text) node()          {}
func (t *Text) String() string { return t.Value }

// MarshalYAML renders a text node as a plain scalar.
func (t *Text) MarshalYAML() (any, error) { return t.Value, nil }

// Attribute is a single name/value pair on a tag. Value is empty for
// attributes written without one.
type Attribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Tag is an element with ordered attributes and children. Attributes keep
// source order and may repeat a name.
type Tag struct {
	Name       string
	Attributes []Attribute
	Children   []Node
}

func (t *Tag) node() {}

func (t *Tag) String() string {
	var out strings.Builder
	out.WriteString("<")
	out.WriteString(t.Name)
	out.WriteString(AttributeBlock(t.Attributes))
	out.WriteString(">")
	for _, c := range t.Children {
		out.WriteString(c.String())
	}
	out.WriteString("</")
	out.WriteString(t.Name)
	out.WriteString(">")
	return out.String()
}

type yamlTag struct {
	Tag        string      `yaml:"tag"`
	Attributes []Attribute `yaml:"attributes,omitempty"`
	Children   []Node      `yaml:"children,omitempty"`
}

// MarshalYAML renders a tag as a mapping with tag, attributes and children keys.
func (t *Tag) MarshalYAML() (any, error) {
	return yamlTag{Tag: t.Name, Attributes: t.Attributes, Children: t.Children}, nil
}

// AttributeBlock formats attrs the way they appear inside an opening tag.
// Each attribute becomes ` name="value"` and the fragments are joined with a
// further space, so two or more attributes are separated by two spaces.
// Existing output depends on that spacing.
func AttributeBlock(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, " "+a.Name+`="`+a.Value+`"`)
	}
	return strings.Join(parts, " ")
}

// Walk calls fn for node and its descendants in document order. depth is 0
// for node itself. Children of a node are skipped when fn returns false.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int) bool) {
	if node == nil || !fn(node, depth) {
		return
	}
	if t, ok := node.(*Tag); ok {
		for _, c := range t.Children {
			walk(c, depth+1, fn)
		}
	}
}
