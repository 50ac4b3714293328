package htmlisp

import "github.com/KimNorgaard/htmlisp/errors"

// ParseError is returned by Parse and ParseReader.
type ParseError = errors.ParseError

// ErrorKind classifies a ParseError.
type ErrorKind = errors.Kind

// Parse error kinds.
const (
	ExpectedIdentifier     = errors.ExpectedIdentifier
	ExpectedAttributeValue = errors.ExpectedAttributeValue
	UnterminatedString     = errors.UnterminatedString
	UnexpectedEndOfInput   = errors.UnexpectedEndOfInput
	UnexpectedCharacter    = errors.UnexpectedCharacter
	ExpectedClosingParen   = errors.ExpectedClosingParen
	MaxDepthExceeded       = errors.MaxDepthExceeded
)

// Sentinels for use with errors.Is.
var (
	ErrExpectedIdentifier     = errors.ErrExpectedIdentifier
	ErrExpectedAttributeValue = errors.ErrExpectedAttributeValue
	ErrUnterminatedString     = errors.ErrUnterminatedString
	ErrUnexpectedEndOfInput   = errors.ErrUnexpectedEndOfInput
	ErrUnexpectedCharacter    = errors.ErrUnexpectedCharacter
	ErrExpectedClosingParen   = errors.ErrExpectedClosingParen
	ErrMaxDepthExceeded       = errors.ErrMaxDepthExceeded
)
