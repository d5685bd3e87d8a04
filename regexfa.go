// Package regexfa is a small regular-expression engine built on finite
// automata. A pattern is parsed into an AST, compiled into an NFA via
// Thompson's construction, and matched by simulating the NFA; repeated
// matching can instead use a DFA produced lazily by subset
// construction. Matching is anchored: the whole input must match.
//
// The grammar knows literals, concatenation, alternation (|),
// grouping and zero-or-more repetition (*). There are no escapes,
// classes, captures or substring search.
package regexfa

import (
	"sync"

	"regexfa/automaton"
	"regexfa/syntax"
)

// Regexp is a compiled pattern. It is immutable and safe for
// concurrent matching.
type Regexp struct {
	pattern string
	ast     syntax.Node
	nfa     *automaton.NFA

	dfaOnce sync.Once
	dfa     *automaton.DFA
}

// Compile parses the pattern and builds its NFA. The returned error,
// if any, is always a *syntax.Error; once parsing succeeds,
// compilation cannot fail.
func Compile(pattern string) (*Regexp, error) {
	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{
		pattern: pattern,
		ast:     ast,
		nfa:     automaton.Compile(ast),
	}, nil
}

// MustCompile is Compile, panicking on a bad pattern.
func MustCompile(pattern string) *Regexp {
	r, err := Compile(pattern)
	if err != nil {
		panic("regexfa: " + err.Error())
	}
	return r
}

// Match reports whether the pattern matches the whole input, by
// direct NFA simulation.
func (r *Regexp) Match(input string) bool {
	return r.nfa.Matches(input)
}

// MatchDFA reports whether the pattern matches the whole input, using
// the determinized automaton. The DFA is built on first use; the Once
// keeps a concurrent first use safe, and matching against the
// finished DFA is read-only.
func (r *Regexp) MatchDFA(input string) bool {
	return r.DFA().Matches(input)
}

// DFA returns the determinized automaton, building it if needed.
func (r *Regexp) DFA() *automaton.DFA {
	r.dfaOnce.Do(func() {
		r.dfa = automaton.Determinize(r.nfa)
	})
	return r.dfa
}

// NFA returns the compiled NFA.
func (r *Regexp) NFA() *automaton.NFA { return r.nfa }

// String returns the source pattern.
func (r *Regexp) String() string { return r.pattern }
