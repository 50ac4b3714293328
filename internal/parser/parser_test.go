package parser_test

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/KimNorgaard/htmlisp/ast"
	"github.com/KimNorgaard/htmlisp/errors"
	"github.com/KimNorgaard/htmlisp/internal/lexer"
	"github.com/KimNorgaard/htmlisp/internal/parser"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string, cfg parser.Config) (ast.Node, error) {
	t.Helper()
	p := parser.New(lexer.New(strings.NewReader(input)), cfg)
	return p.Parse()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ast.Node
	}{
		{
			name:     "Empty tag",
			input:    "(html)",
			expected: &ast.Tag{Name: "html"},
		},
		{
			name:     "Top-level string",
			input:    `"just text"`,
			expected: &ast.Text{Value: "just text"},
		},
		{
			name:  "Single attribute",
			input: `(img :src "https://via.placeholder.com/150")`,
			expected: &ast.Tag{
				Name:       "img",
				Attributes: []ast.Attribute{{Name: "src", Value: "https://via.placeholder.com/150"}},
			},
		},
		{
			name:  "Nested",
			input: `(div :style "background: white" (h1 "hello") (p "world"))`,
			expected: &ast.Tag{
				Name:       "div",
				Attributes: []ast.Attribute{{Name: "style", Value: "background: white"}},
				Children: []ast.Node{
					&ast.Tag{Name: "h1", Children: []ast.Node{&ast.Text{Value: "hello"}}},
					&ast.Tag{Name: "p", Children: []ast.Node{&ast.Text{Value: "world"}}},
				},
			},
		},
		{
			name:  "Escaped quotes",
			input: `(p "jioj\"jiojio\"")`,
			expected: &ast.Tag{
				Name:     "p",
				Children: []ast.Node{&ast.Text{Value: `jioj"jiojio"`}},
			},
		},
		{
			name:  "Empty-valued attribute followed by another",
			input: `(input :disabled :type "checkbox")`,
			expected: &ast.Tag{
				Name: "input",
				Attributes: []ast.Attribute{
					{Name: "disabled", Value: ""},
					{Name: "type", Value: "checkbox"},
				},
			},
		},
		{
			name:  "Abutting attribute keys",
			input: `(input :disabled:checked:type "radio")`,
			expected: &ast.Tag{
				Name: "input",
				Attributes: []ast.Attribute{
					{Name: "disabled", Value: ""},
					{Name: "checked", Value: ""},
					{Name: "type", Value: "radio"},
				},
			},
		},
		{
			name:  "Duplicate attributes are kept",
			input: `(p :class "a" :class "b")`,
			expected: &ast.Tag{
				Name: "p",
				Attributes: []ast.Attribute{
					{Name: "class", Value: "a"},
					{Name: "class", Value: "b"},
				},
			},
		},
		{
			name:  "No whitespace between name and child",
			input: `(h1"hi"(br))`,
			expected: &ast.Tag{
				Name:     "h1",
				Children: []ast.Node{&ast.Text{Value: "hi"}, &ast.Tag{Name: "br"}},
			},
		},
		{
			name:  "Whitespace everywhere",
			input: "(ul\n\t:id \"list\"\r\n\t(li \"one\")\n\t(li \"two\")\n)\n",
			expected: &ast.Tag{
				Name:       "ul",
				Attributes: []ast.Attribute{{Name: "id", Value: "list"}},
				Children: []ast.Node{
					&ast.Tag{Name: "li", Children: []ast.Node{&ast.Text{Value: "one"}}},
					&ast.Tag{Name: "li", Children: []ast.Node{&ast.Text{Value: "two"}}},
				},
			},
		},
		{
			name:  "Other escapes pass through",
			input: `(pre "a\nb\\c")`,
			expected: &ast.Tag{
				Name:     "pre",
				Children: []ast.Node{&ast.Text{Value: `a\nb\\c`}},
			},
		},
		{
			name:     "Trailing input is ignored",
			input:    `(br) (hr)`,
			expected: &ast.Tag{Name: "br"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := parse(t, tt.input, parser.Config{})
			require.NoError(t, err)
			require.Equal(t, tt.expected, node)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  errors.Kind
		found string
	}{
		{"Empty input", "", errors.UnexpectedCharacter, ""},
		{"Leading whitespace", " (p)", errors.UnexpectedCharacter, " "},
		{"Bare word", "div", errors.UnexpectedCharacter, "d"},
		{"Missing tag name", "()", errors.ExpectedIdentifier, ")"},
		{"Tag name at end of input", "(", errors.ExpectedIdentifier, ""},
		{"Missing attribute name", `(p : "x")`, errors.ExpectedIdentifier, " "},
		{"Colon without name before close", "(input :disabled: )", errors.ExpectedIdentifier, " "},
		{"Attribute without value", "(div :attr)", errors.ExpectedAttributeValue, ")"},
		{"Attribute followed by child", `(div :attr (p))`, errors.ExpectedAttributeValue, "("},
		{"Attribute at end of input", "(div :attr", errors.UnexpectedEndOfInput, ""},
		{"Input ends after attribute value", `(div :a "b"`, errors.UnexpectedEndOfInput, ""},
		{"Input ends after attribute whitespace", "(div :a \"b\"  \n", errors.UnexpectedEndOfInput, ""},
		{"Unterminated top-level string", `"unterminated`, errors.UnterminatedString, ""},
		{"Unterminated child string", `(p "abc`, errors.UnterminatedString, ""},
		{"Unterminated attribute value", `(a :href "x`, errors.UnterminatedString, ""},
		{"Missing closer", "(p", errors.UnexpectedEndOfInput, ""},
		{"Missing closer after child", `(p "x"  `, errors.UnexpectedEndOfInput, ""},
		{"Missing outer closer", `(div (p "x")`, errors.UnexpectedEndOfInput, ""},
		{"Wrong closer", `(p "x"]`, errors.ExpectedClosingParen, "]"},
		{"Garbage before closer", `(p "x" garbage)`, errors.ExpectedClosingParen, "g"},
		{"Error in nested child", `(div (p :x))`, errors.ExpectedAttributeValue, ")"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := parse(t, tt.input, parser.Config{})
			require.Nil(t, node, "failed parse must not return a partial tree")

			var perr *errors.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.kind, perr.Kind)
			require.Equal(t, tt.found, perr.Found)
		})
	}
}

func TestParseLenientClose(t *testing.T) {
	cfg := parser.Config{LenientClose: true}

	node, err := parse(t, `(div (p "x"] (br}]`, cfg)
	require.NoError(t, err)
	require.Equal(t, `<div><p>x</p><br></br></div>`, node.String())

	_, err = parse(t, `(p "x"`, cfg)
	require.ErrorIs(t, err, errors.ErrUnexpectedEndOfInput)
}

func TestParseMaxDepth(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("(b ", n) + strings.Repeat(")", n)
	}

	_, err := parse(t, nested(3), parser.Config{MaxDepth: 3})
	require.NoError(t, err)

	_, err = parse(t, nested(4), parser.Config{MaxDepth: 3})
	require.ErrorIs(t, err, errors.ErrMaxDepthExceeded)

	_, err = parse(t, nested(parser.DefaultMaxDepth+1), parser.Config{})
	require.ErrorIs(t, err, errors.ErrMaxDepthExceeded)

	node, err := parse(t, nested(500), parser.Config{})
	require.NoError(t, err)
	depth := 0
	ast.Walk(node, func(_ ast.Node, d int) bool {
		depth = max(depth, d)
		return true
	})
	require.Equal(t, 499, depth)
}

func TestParseReadError(t *testing.T) {
	errDisk := stderrors.New("disk on fire")

	for _, input := range []string{`(p "abc`, `(p "abc")`, `(p :class "a`} {
		t.Run(input, func(t *testing.T) {
			r := io.MultiReader(strings.NewReader(input), iotest.ErrReader(errDisk))
			node, err := parser.New(lexer.New(r), parser.Config{}).Parse()
			require.Nil(t, node)
			require.ErrorIs(t, err, errDisk)

			var perr *errors.ParseError
			require.False(t, stderrors.As(err, &perr), "read error must not surface as a syntax error")
		})
	}
}
