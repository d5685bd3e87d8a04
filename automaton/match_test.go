package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"regexfa/syntax"
)

func TestMatchesLiteral(t *testing.T) {
	n := Compile(syntax.Char{R: 'a'})

	assert.True(t, n.Matches("a"))
	assert.False(t, n.Matches(""))
	assert.False(t, n.Matches("aa"))
	assert.False(t, n.Matches("b"))
}

func TestMatchesRepeatEmptyInput(t *testing.T) {
	n := Compile(syntax.Repeat{Inner: syntax.Char{R: 'a'}})

	assert.True(t, n.Matches(""))
	assert.True(t, n.Matches("a"))
	assert.True(t, n.Matches("aaaa"))
	assert.False(t, n.Matches("ab"))
}

func TestMatchesAnchored(t *testing.T) {
	// ab: neither a prefix nor a suffix match counts.
	n := Compile(syntax.Concat{Left: syntax.Char{R: 'a'}, Right: syntax.Char{R: 'b'}})

	assert.True(t, n.Matches("ab"))
	assert.False(t, n.Matches("a"))
	assert.False(t, n.Matches("b"))
	assert.False(t, n.Matches("xab"))
	assert.False(t, n.Matches("abx"))
}

func TestMatchesShortCircuit(t *testing.T) {
	// Once the frontier empties it never refills; a rune outside the
	// alphabet anywhere in the input rejects.
	n := Compile(astABC())

	assert.True(t, n.Matches("acbbc"))
	assert.False(t, n.Matches("azb"))
	assert.False(t, n.Matches("z"))
}

func TestMatchesOrBranches(t *testing.T) {
	n := Compile(syntax.Or{Left: syntax.Char{R: 'a'}, Right: syntax.Char{R: 'b'}})

	assert.True(t, n.Matches("a"))
	assert.True(t, n.Matches("b"))
	assert.False(t, n.Matches("ab"))
	assert.False(t, n.Matches(""))
}
