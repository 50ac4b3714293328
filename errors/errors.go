package errors

import "fmt"

// Kind classifies a parse failure.
type Kind int

const (
	// ExpectedIdentifier means a tag or attribute name was required but the
	// next character was not an ASCII letter or digit.
	ExpectedIdentifier Kind = iota + 1
	// ExpectedAttributeValue means an attribute name was followed by something
	// other than a string literal or the start of another attribute.
	ExpectedAttributeValue
	// UnterminatedString means the input ended inside a string literal.
	UnterminatedString
	// UnexpectedEndOfInput means the input ended where more was required.
	UnexpectedEndOfInput
	// UnexpectedCharacter means a node could not start with the next character.
	UnexpectedCharacter
	// ExpectedClosingParen means a tag was closed by something other than ')'.
	ExpectedClosingParen
	// MaxDepthExceeded means tags were nested deeper than the configured limit.
	MaxDepthExceeded
)

var kindDescriptions = map[Kind]string{
	ExpectedIdentifier:     "expected identifier",
	ExpectedAttributeValue: "expected attribute value",
	UnterminatedString:     "unterminated string literal",
	UnexpectedEndOfInput:   "unexpected end of input",
	UnexpectedCharacter:    "unexpected character",
	ExpectedClosingParen:   "expected ')'",
	MaxDepthExceeded:       "maximum nesting depth exceeded",
}

func (k Kind) String() string {
	if s, ok := kindDescriptions[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError is the single error returned by a failed parse.
// Found holds the offending character, or is empty at end of input.
type ParseError struct {
	Kind  Kind
	Found string
}

func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("htmlisp: %s, found end of input", e.Kind)
	}
	return fmt.Sprintf("htmlisp: %s, found %q", e.Kind, e.Found)
}

// Is reports whether target is a *ParseError of the same Kind, so the
// sentinels below can be used with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New returns a ParseError of kind k for the character r.
// A negative r stands for end of input.
func New(k Kind, r rune) *ParseError {
	e := &ParseError{Kind: k}
	if r >= 0 {
		e.Found = string(r)
	}
	return e
}

// Sentinels for matching with errors.Is.
var (
	ErrExpectedIdentifier     = &ParseError{Kind: ExpectedIdentifier}
	ErrExpectedAttributeValue = &ParseError{Kind: ExpectedAttributeValue}
	ErrUnterminatedString     = &ParseError{Kind: UnterminatedString}
	ErrUnexpectedEndOfInput   = &ParseError{Kind: UnexpectedEndOfInput}
	ErrUnexpectedCharacter    = &ParseError{Kind: UnexpectedCharacter}
	ErrExpectedClosingParen   = &ParseError{Kind: ExpectedClosingParen}
	ErrMaxDepthExceeded       = &ParseError{Kind: MaxDepthExceeded}
)
