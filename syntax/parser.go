package syntax

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Four metacharacters; every other rune is a literal.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Bar", Pattern: `\|`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Char", Pattern: `[^()|*]`},
})

// Precedence is encoded in the grammar: alternation binds loosest,
// then concatenation, then repetition.
type altExpr struct {
	First *catExpr   `parser:"@@"`
	Rest  []*catExpr `parser:"( '|' @@ )*"`
}

type catExpr struct {
	Terms []*repExpr `parser:"@@+"`
}

type repExpr struct {
	Atom *atomExpr `parser:"@@"`
	Star bool      `parser:"@'*'?"`
}

type atomExpr struct {
	Char  string   `parser:"@Char"`
	Group *altExpr `parser:"| '(' @@ ')'"`
}

var parser = participle.MustBuild[altExpr](participle.Lexer(patternLexer))

// Parse turns a pattern string into its AST. Failures are always a
// *Error carrying one of the three ErrorKind values.
func Parse(pattern string) (Node, error) {
	root, err := parser.ParseString("", pattern)
	if err == nil {
		return lowerAlt(root), nil
	}

	var unexpected *participle.UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		// The lexer accepts every rune, so only token-level parse
		// errors are reachable.
		return nil, err
	}
	tok := unexpected.Unexpected
	if tok.EOF() {
		return nil, &Error{Kind: ErrUnexpectedEOF, Pos: tok.Pos}
	}
	// Trailing input means a complete expression ended exactly where
	// the strict parse gave up. A lenient parse that succeeds by
	// abandoning tokens *before* the offending one (as in "a|*",
	// where it parses just "a" and leaves "|*") does not make the
	// failure trailing; the token is simply unexpected.
	if rest, ok := lenientRemainder(pattern); ok && rest.Pos == tok.Pos {
		return nil, &Error{Kind: ErrTrailingInput, Pos: tok.Pos, Token: tok.Value}
	}
	return nil, &Error{Kind: ErrUnexpectedToken, Pos: tok.Pos, Token: tok.Value, Expected: unexpected.Expect}
}

// lenientRemainder parses the longest expression prefix of pattern and
// returns the first token it left unconsumed. ok is false when no
// prefix parses at all.
func lenientRemainder(pattern string) (rest lexer.Token, ok bool) {
	lex, err := patternLexer.Lex("", strings.NewReader(pattern))
	if err != nil {
		return lexer.Token{}, false
	}
	peeker, err := lexer.Upgrade(lex)
	if err != nil {
		return lexer.Token{}, false
	}
	if _, err := parser.ParseFromLexer(peeker, participle.AllowTrailing(true)); err != nil {
		return lexer.Token{}, false
	}
	return *peeker.Peek(), true
}

// Lowering folds the parse tree into the four-variant AST,
// left-associating both alternation and concatenation.

func lowerAlt(a *altExpr) Node {
	n := lowerCat(a.First)
	for _, c := range a.Rest {
		n = Or{Left: n, Right: lowerCat(c)}
	}
	return n
}

func lowerCat(c *catExpr) Node {
	n := lowerRep(c.Terms[0])
	for _, t := range c.Terms[1:] {
		n = Concat{Left: n, Right: lowerRep(t)}
	}
	return n
}

func lowerRep(r *repExpr) Node {
	n := lowerAtom(r.Atom)
	if r.Star {
		n = Repeat{Inner: n}
	}
	return n
}

func lowerAtom(a *atomExpr) Node {
	if a.Group != nil {
		return lowerAlt(a.Group)
	}
	r, _ := utf8.DecodeRuneInString(a.Char)
	return Char{R: r}
}
