package parser

import (
	"fmt"

	"github.com/KimNorgaard/htmlisp/ast"
	"github.com/KimNorgaard/htmlisp/errors"
	"github.com/KimNorgaard/htmlisp/internal/lexer"
)

// DefaultMaxDepth is the tag nesting limit used when Config.MaxDepth is zero.
const DefaultMaxDepth = 10000

type prefixParseFn func() (ast.Node, error)

// Config controls optional parser behavior.
type Config struct {
	// MaxDepth limits tag nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// LenientClose accepts any character as the end of a tag instead of
	// requiring ')'.
	LenientClose bool
}

// Parser holds the state of the parser.
type Parser struct {
	l   *lexer.Lexer
	cfg Config

	depth int

	prefixParseFns map[rune]prefixParseFn
}

// New creates a new parser.
func New(l *lexer.Lexer, cfg Config) *Parser {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	p := &Parser{l: l, cfg: cfg}

	p.prefixParseFns = map[rune]prefixParseFn{
		'(': p.parseTag,
		'"': p.parseText,
	}
	return p
}

// Parse parses a single node from the input. Anything after that node is
// left unread. On failure the returned node is nil. A read error from the
// underlying reader takes precedence over any syntax error it caused.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.parseNode()
	if lerr := p.l.Err(); lerr != nil {
		return nil, fmt.Errorf("htmlisp: reading input: %w", lerr)
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}

// The contract for all parse functions is that they are entered with the
// lexer positioned on the first character of the construct and return with
// it positioned on the character after it.

func (p *Parser) parseNode() (ast.Node, error) {
	prefix := p.prefixParseFns[p.l.Peek()]
	if prefix == nil {
		return nil, errors.New(errors.UnexpectedCharacter, p.l.Peek())
	}
	return prefix()
}

func (p *Parser) parseText() (ast.Node, error) {
	s, err := p.readString()
	if err != nil {
		return nil, err
	}
	return &ast.Text{Value: s}, nil
}

func (p *Parser) parseTag() (ast.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.cfg.MaxDepth {
		return nil, errors.New(errors.MaxDepthExceeded, p.l.Peek())
	}

	p.l.Next() // consume '('

	name, err := p.readIdentifier()
	if err != nil {
		return nil, err
	}
	tag := &ast.Tag{Name: name}

	p.l.SkipWhitespace()

	for p.l.Peek() == ':' {
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		tag.Attributes = append(tag.Attributes, attr)
	}

	for p.peekIsNodeStart() {
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		tag.Children = append(tag.Children, child)
		p.l.SkipWhitespace()
	}

	p.l.SkipWhitespace()

	switch closer := p.l.Next(); {
	case closer == lexer.EOF:
		return nil, errors.New(errors.UnexpectedEndOfInput, closer)
	case closer != ')' && !p.cfg.LenientClose:
		return nil, errors.New(errors.ExpectedClosingParen, closer)
	}
	return tag, nil
}

func (p *Parser) parseAttribute() (ast.Attribute, error) {
	p.l.Next() // consume ':'

	name, err := p.readIdentifier()
	if err != nil {
		return ast.Attribute{}, err
	}
	attr := ast.Attribute{Name: name}

	p.l.SkipWhitespace()

	switch ch := p.l.Peek(); ch {
	case ':':
		// Another attribute follows directly; this one has no value.
	case '"':
		if attr.Value, err = p.readString(); err != nil {
			return ast.Attribute{}, err
		}
	case lexer.EOF:
		return ast.Attribute{}, errors.New(errors.UnexpectedEndOfInput, ch)
	default:
		return ast.Attribute{}, errors.New(errors.ExpectedAttributeValue, ch)
	}

	p.l.SkipWhitespace()
	if p.l.Peek() == lexer.EOF {
		return ast.Attribute{}, errors.New(errors.UnexpectedEndOfInput, lexer.EOF)
	}
	return attr, nil
}

func (p *Parser) readIdentifier() (string, error) {
	ident := p.l.ReadIdentifier()
	if ident == "" {
		return "", errors.New(errors.ExpectedIdentifier, p.l.Peek())
	}
	return ident, nil
}

func (p *Parser) readString() (string, error) {
	s, ok := p.l.ReadString()
	if !ok {
		return "", errors.New(errors.UnterminatedString, lexer.EOF)
	}
	return s, nil
}

func (p *Parser) peekIsNodeStart() bool {
	_, ok := p.prefixParseFns[p.l.Peek()]
	return ok
}
