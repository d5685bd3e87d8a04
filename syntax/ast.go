// Package syntax turns a regular-expression pattern string into the
// four-variant AST consumed by the automaton package. The grammar knows
// literals, concatenation, alternation and zero-or-more repetition;
// there are no escapes or character classes.
package syntax

// Node is a parsed regular expression. The four concrete variants are
// Char, Concat, Or and Repeat.
type Node interface {
	node()
}

// Char matches a single literal character.
type Char struct {
	R rune
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Or matches either Left or Right.
type Or struct {
	Left, Right Node
}

// Repeat matches zero or more occurrences of Inner.
type Repeat struct {
	Inner Node
}

func (Char) node()   {}
func (Concat) node() {}
func (Or) node()     {}
func (Repeat) node() {}
