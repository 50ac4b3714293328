package htmlisp

import (
	"fmt"

	"github.com/KimNorgaard/htmlisp/internal/parser"
)

// Option configures Parse and ParseReader.
type Option func(*options) error

type options struct {
	maxDepth     int
	lenientClose bool
}

// MaxDepth returns an Option that limits how deeply tags may be nested.
// Deeper documents fail with a MaxDepthExceeded error instead of growing
// the stack without bound.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("htmlisp: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// LenientClose returns an Option that accepts any character where a tag's
// closing ')' is expected. Older HTMLisp tooling behaved this way.
func LenientClose() Option {
	return func(o *options) error {
		o.lenientClose = true
		return nil
	}
}

// DefaultMaxDepth is the nesting limit applied when MaxDepth is not given.
const DefaultMaxDepth = parser.DefaultMaxDepth
