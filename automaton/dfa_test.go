package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexfa/syntax"
)

// words enumerates every string over alpha up to maxLen runes.
func words(alpha string, maxLen int) []string {
	out := []string{""}
	prev := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, w := range prev {
			for _, c := range alpha {
				next = append(next, w+string(c))
			}
		}
		out = append(out, next...)
		prev = next
	}
	return out
}

func TestDeterminizeLiteral(t *testing.T) {
	n := Compile(syntax.Char{R: 'a'})
	d := Determinize(n)

	require.Equal(t, 2, d.NumStates())
	assert.Equal(t, State(0), d.Start)
	assert.False(t, d.IsAccept(d.Start))
	assert.True(t, d.IsAccept(1))
	assert.Equal(t, []rune{'a'}, d.Alphabet())
}

func TestDeterminizeAcceptMarking(t *testing.T) {
	// A DFA state accepts exactly when its defining set holds the
	// NFA's accept state.
	for _, ast := range []syntax.Node{
		astABC(),
		syntax.Repeat{Inner: syntax.Char{R: 'a'}},
		syntax.Or{
			Left:  syntax.Repeat{Inner: syntax.Concat{Left: syntax.Char{R: 'a'}, Right: syntax.Char{R: 'b'}}},
			Right: syntax.Char{R: 'c'},
		},
	} {
		n := Compile(ast)
		d := Determinize(n)

		marked := 0
		for s := State(0); int(s) < d.NumStates(); s++ {
			assert.Equal(t, d.Set(s).Contains(n.Accept), d.IsAccept(s))
			if d.IsAccept(s) {
				marked++
			}
		}
		assert.Greater(t, marked, 0, "no accepting DFA state at all")
	}
}

func TestDeterminizeStartSet(t *testing.T) {
	n := Compile(astABC())
	d := Determinize(n)

	assert.Equal(t, n.Closure(NewStateSet(n.Start)).Key(), d.Set(d.Start).Key())
}

func TestDeterminizeSetsAreClosed(t *testing.T) {
	n := Compile(astABC())
	d := Determinize(n)

	for s := State(0); int(s) < d.NumStates(); s++ {
		set := d.Set(s)
		assert.Equal(t, set.Key(), n.Closure(set).Key(), "state %d set not epsilon-closed", s)
	}
}

func TestDeterminizeDistinctSetsDistinctStates(t *testing.T) {
	n := Compile(astABC())
	d := Determinize(n)

	keys := make(map[string]State)
	for s := State(0); int(s) < d.NumStates(); s++ {
		k := d.Set(s).Key()
		prev, dup := keys[k]
		require.False(t, dup, "states %d and %d share set %v", prev, s, d.Set(s))
		keys[k] = s
	}
}

func TestNFAAndDFAAgree(t *testing.T) {
	asts := map[string]syntax.Node{
		"a(b|c)*": astABC(),
		"(ab|a)*c": syntax.Concat{
			Left: syntax.Repeat{Inner: syntax.Or{
				Left:  syntax.Concat{Left: syntax.Char{R: 'a'}, Right: syntax.Char{R: 'b'}},
				Right: syntax.Char{R: 'a'},
			}},
			Right: syntax.Char{R: 'c'},
		},
		"a*b*": syntax.Concat{
			Left:  syntax.Repeat{Inner: syntax.Char{R: 'a'}},
			Right: syntax.Repeat{Inner: syntax.Char{R: 'b'}},
		},
	}
	for name, ast := range asts {
		t.Run(name, func(t *testing.T) {
			n := Compile(ast)
			d := Determinize(n)
			for _, w := range words("abc", 4) {
				assert.Equal(t, n.Matches(w), d.Matches(w), "pattern %s, input %q", name, w)
			}
		})
	}
}

func TestDFAMatchesRejectsMissingTransition(t *testing.T) {
	d := Determinize(Compile(syntax.Char{R: 'a'}))

	assert.False(t, d.Matches("z"))
	assert.False(t, d.Matches("az"))
	assert.False(t, d.Matches("aa"))
}

func TestDFAMatchesStateless(t *testing.T) {
	d := Determinize(Compile(astABC()))

	for i := 0; i < 3; i++ {
		assert.True(t, d.Matches("abc"))
		assert.False(t, d.Matches("b"))
	}
}
