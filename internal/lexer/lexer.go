package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

// EOF is returned by Peek and Next once the input is exhausted.
const EOF rune = -1

// Lexer is a one-rune lookahead cursor over HTMLisp source. Bytes that are
// not valid UTF-8 are read as U+FFFD, one replacement per invalid byte.
type Lexer struct {
	r   *bufio.Reader
	buf bytes.Buffer
	ch  rune
	err error
}

// New creates and returns a new Lexer positioned on the first rune of r.
func New(r io.Reader) *Lexer {
	l := &Lexer{r: bufio.NewReader(r)}
	l.readRune()
	return l
}

// Peek returns the current rune without consuming it.
func (l *Lexer) Peek() rune {
	return l.ch
}

// Next consumes and returns the current rune. At the end of input it keeps
// returning EOF.
func (l *Lexer) Next() rune {
	ch := l.ch
	if ch != EOF {
		l.readRune()
	}
	return ch
}

// SkipWhitespace consumes runes while they are Unicode white space. It stops
// silently at the end of input.
func (l *Lexer) SkipWhitespace() {
	for l.ch != EOF && unicode.IsSpace(l.ch) {
		l.readRune()
	}
}

// ReadIdentifier consumes a run of ASCII letters and digits and returns it.
// The rune that ends the run is left unconsumed, so an empty result means the
// current rune cannot start an identifier.
func (l *Lexer) ReadIdentifier() string {
	l.buf.Reset()
	for isIdentifierChar(l.ch) {
		l.buf.WriteRune(l.ch)
		l.readRune()
	}
	return l.buf.String()
}

// ReadString consumes a string literal starting at the current '"' and
// returns its value. A quote directly preceded by a backslash does not end
// the literal, and every \" in the result is rewritten to ". No other escape
// sequences are recognized. ok is false when the input ends before the
// closing quote.
func (l *Lexer) ReadString() (s string, ok bool) {
	l.readRune() // consume opening quote
	l.buf.Reset()
	for {
		switch {
		case l.ch == EOF:
			return "", false
		case l.ch == '"' && !l.lastBufferedIs('\\'):
			l.readRune() // consume closing quote
			return strings.ReplaceAll(l.buf.String(), `\"`, `"`), true
		}
		l.buf.WriteRune(l.ch)
		l.readRune()
	}
}

// Err returns the first error other than io.EOF met while reading the
// input. Once it is set the lexer behaves as if the input had ended.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) readRune() {
	r, _, err := l.r.ReadRune()
	if err != nil {
		if err != io.EOF && l.err == nil {
			l.err = err
		}
		l.ch = EOF
		return
	}
	l.ch = r
}

func (l *Lexer) lastBufferedIs(ch byte) bool {
	b := l.buf.Bytes()
	return len(b) > 0 && b[len(b)-1] == ch
}

func isIdentifierChar(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
}
