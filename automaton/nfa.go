// Package automaton compiles a regular-expression AST into a
// nondeterministic finite automaton via Thompson's construction,
// simulates the NFA for full-string matching, and determinizes it via
// subset construction for one-lookup-per-character matching.
package automaton

import (
	"sort"
	"strconv"
	"strings"

	"regexfa/syntax"
)

// State identifies an NFA state. Identity only, no payload.
type State uint32

// Epsilon labels a transition that consumes no input. A transition is
// either epsilon or a single literal rune, never both; rune(0) cannot
// be produced by the pattern grammar.
const Epsilon rune = 0

// StateSet is a set of NFA states. It doubles as a DFA-state identity
// during subset construction.
type StateSet map[State]struct{}

// NewStateSet builds a set from the given states.
func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports whether s is a member of the set.
func (set StateSet) Contains(s State) bool {
	_, ok := set[s]
	return ok
}

// Key returns a canonical representation of the set: the sorted member
// ids joined into a string. Two sets get the same key iff they hold
// exactly the same states, which is the identity subset construction
// relies on. A lossy combination of the ids (summing, multiplying)
// would merge distinct DFA states.
func (set StateSet) Key() string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, int(s))
	}
	sort.Ints(ids)

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// NFA is a nondeterministic finite automaton with one start and one
// accept state, as produced by Thompson's construction. The transition
// table maps state → label → destination set; the Epsilon label marks
// transitions that consume no input. An NFA is immutable once built.
type NFA struct {
	Start  State
	Accept State
	trans  map[State]map[rune]StateSet
}

// addEdge records a single transition. Only the builder and the DFA
// reversal use it; a finished NFA is never mutated.
func (n *NFA) addEdge(from State, label rune, to State) {
	edges, ok := n.trans[from]
	if !ok {
		edges = make(map[rune]StateSet)
		n.trans[from] = edges
	}
	set, ok := edges[label]
	if !ok {
		set = make(StateSet)
		edges[label] = set
	}
	set[to] = struct{}{}
}

// merge unions the transition table of a sub-fragment into n. Global
// state-id uniqueness guarantees the union is collision-free.
func (n *NFA) merge(frag *NFA) {
	for from, edges := range frag.trans {
		for label, dests := range edges {
			for to := range dests {
				n.addEdge(from, label, to)
			}
		}
	}
}

// builder allocates globally unique state ids for one compilation.
// Threading the counter through the recursion keeps every
// sub-fragment's states disjoint, so transition tables merge by plain
// union.
type builder struct {
	next State
}

func (b *builder) newState() State {
	s := b.next
	b.next++
	return s
}

func (b *builder) newNFA() *NFA {
	return &NFA{
		Start:  b.newState(),
		Accept: b.newState(),
		trans:  make(map[State]map[rune]StateSet),
	}
}

// Compile builds an NFA from a well-formed AST using Thompson's
// construction. It is total: the parser guarantees the AST's shape,
// and every construction rule succeeds.
func Compile(root syntax.Node) *NFA {
	b := &builder{}
	return b.compile(root)
}

func (b *builder) compile(node syntax.Node) *NFA {
	switch n := node.(type) {
	case syntax.Char:
		return b.compileChar(n.R)
	case syntax.Concat:
		return b.compileConcat(n.Left, n.Right)
	case syntax.Or:
		return b.compileOr(n.Left, n.Right)
	case syntax.Repeat:
		return b.compileRepeat(n.Inner)
	default:
		panic("automaton: unknown AST node")
	}
}

// Literal: start --c--> accept.
func (b *builder) compileChar(c rune) *NFA {
	n := b.newNFA()
	n.addEdge(n.Start, c, n.Accept)
	return n
}

// Concatenation: start --ε--> left, left.accept --ε--> right,
// right.accept --ε--> accept.
func (b *builder) compileConcat(left, right syntax.Node) *NFA {
	n := b.newNFA()
	l := b.compile(left)
	r := b.compile(right)

	n.addEdge(n.Start, Epsilon, l.Start)
	n.addEdge(l.Accept, Epsilon, r.Start)
	n.addEdge(r.Accept, Epsilon, n.Accept)

	n.merge(l)
	n.merge(r)
	return n
}

// Alternation: start branches into both fragments, both rejoin at
// accept.
func (b *builder) compileOr(left, right syntax.Node) *NFA {
	n := b.newNFA()
	l := b.compile(left)
	r := b.compile(right)

	n.addEdge(n.Start, Epsilon, l.Start)
	n.addEdge(n.Start, Epsilon, r.Start)
	n.addEdge(l.Accept, Epsilon, n.Accept)
	n.addEdge(r.Accept, Epsilon, n.Accept)

	n.merge(l)
	n.merge(r)
	return n
}

// Zero-or-more: start can skip to accept or enter the body; the body's
// accept loops back to its start or exits. The loop-back edge makes
// the graph genuinely cyclic, which the index-based table represents
// as plain data.
func (b *builder) compileRepeat(inner syntax.Node) *NFA {
	n := b.newNFA()
	f := b.compile(inner)

	n.addEdge(n.Start, Epsilon, n.Accept)
	n.addEdge(n.Start, Epsilon, f.Start)
	n.addEdge(f.Accept, Epsilon, f.Start)
	n.addEdge(f.Accept, Epsilon, n.Accept)

	n.merge(f)
	return n
}

// NumStates returns how many states the builder allocated. States are
// numbered 0..NumStates-1.
func (n *NFA) NumStates() int {
	max := n.Start
	if n.Accept > max {
		max = n.Accept
	}
	for from, edges := range n.trans {
		if from > max {
			max = from
		}
		for _, dests := range edges {
			for to := range dests {
				if to > max {
					max = to
				}
			}
		}
	}
	return int(max) + 1
}

// Alphabet returns the sorted literal runes that label at least one
// transition. Epsilon is not a literal and never appears.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]struct{})
	for _, edges := range n.trans {
		for label := range edges {
			if label != Epsilon {
				seen[label] = struct{}{}
			}
		}
	}
	alpha := make([]rune, 0, len(seen))
	for r := range seen {
		alpha = append(alpha, r)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	return alpha
}
