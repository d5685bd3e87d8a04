package syntax

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrorKind is the closed set of ways a pattern can fail to parse.
type ErrorKind int

const (
	// ErrUnexpectedEOF: the pattern ended before a complete expression.
	ErrUnexpectedEOF ErrorKind = iota
	// ErrUnexpectedToken: a token that no production accepts at this point.
	ErrUnexpectedToken
	// ErrTrailingInput: a complete expression was parsed but input remains.
	ErrTrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEOF:
		return "unexpected end of pattern"
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrTrailingInput:
		return "trailing input after expression"
	}
	return "unknown parse error"
}

// Error is a tagged parse failure. Token holds the offending token's text
// (empty for EOF) and Expected describes the tokens that would have been
// acceptable instead.
type Error struct {
	Kind     ErrorKind
	Pos      lexer.Position
	Token    string
	Expected string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		if e.Expected != "" {
			return fmt.Sprintf("%s: %s %q (expected %s)", e.Pos, e.Kind, e.Token, e.Expected)
		}
		return fmt.Sprintf("%s: %s %q", e.Pos, e.Kind, e.Token)
	case ErrTrailingInput:
		return fmt.Sprintf("%s: %s, starting at %q", e.Pos, e.Kind, e.Token)
	default:
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
}
