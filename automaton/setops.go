package automaton

import "sort"

// Set operations on deterministic automata. Complement and the binary
// products are defined relative to the recorded alphabets: a rune
// outside every operand's alphabet is rejected by both the operand and
// the result.

// complete returns a copy of d whose transition function is total over
// alpha, with an explicit non-accepting sink absorbing the gaps. The
// sink's defining set is the empty NFA state set, which is exactly
// what subset construction would assign the dead state.
func (d *DFA) complete(alpha []rune) *DFA {
	n := d.NumStates()
	c := &DFA{
		Start:    d.Start,
		trans:    make([]map[rune]State, 0, n+1),
		accept:   make([]bool, 0, n+1),
		sets:     make([]StateSet, 0, n+1),
		alphabet: alpha,
	}
	sink := State(n)
	for s := State(0); s < sink; s++ {
		edges := make(map[rune]State, len(alpha))
		for _, r := range alpha {
			if t, ok := d.trans[s][r]; ok {
				edges[r] = t
			} else {
				edges[r] = sink
			}
		}
		c.trans = append(c.trans, edges)
		c.accept = append(c.accept, d.accept[s])
		c.sets = append(c.sets, d.sets[s])
	}
	sinkEdges := make(map[rune]State, len(alpha))
	for _, r := range alpha {
		sinkEdges[r] = sink
	}
	c.trans = append(c.trans, sinkEdges)
	c.accept = append(c.accept, false)
	c.sets = append(c.sets, make(StateSet))
	return c
}

// Complement returns a DFA accepting exactly the strings over d's
// alphabet that d rejects.
func Complement(d *DFA) *DFA {
	c := d.complete(d.alphabet)
	for s := range c.accept {
		c.accept[s] = !c.accept[s]
	}
	return c
}

// Product builds the synchronous product of a and b over the union of
// their alphabets, marking acceptance with op applied to the operand
// states' flags. Only pairs reachable from the start pair are built.
func Product(a, b *DFA, op func(bool, bool) bool) *DFA {
	alpha := unionRunes(a.alphabet, b.alphabet)
	ca := a.complete(alpha)
	cb := b.complete(alpha)

	type pair struct{ i, j State }
	p := &DFA{alphabet: alpha}
	ids := make(map[pair]State)
	register := func(pr pair) State {
		id := State(len(p.trans))
		ids[pr] = id
		p.trans = append(p.trans, make(map[rune]State))
		p.accept = append(p.accept, op(ca.accept[pr.i], cb.accept[pr.j]))
		// A pair state straddles two NFA id spaces; there is no
		// defining set to record (see DFA.Set).
		p.sets = append(p.sets, make(StateSet))
		return id
	}

	start := pair{ca.Start, cb.Start}
	p.Start = register(start)
	queue := []pair{start}
	for len(queue) > 0 {
		pr := queue[0]
		queue = queue[1:]
		id := ids[pr]
		for _, r := range alpha {
			np := pair{ca.trans[pr.i][r], cb.trans[pr.j][r]}
			nid, seen := ids[np]
			if !seen {
				nid = register(np)
				queue = append(queue, np)
			}
			p.trans[id][r] = nid
		}
	}
	return p
}

// Intersect accepts the strings both a and b accept.
func Intersect(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Union accepts the strings either a or b accepts.
func Union(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Reverse returns a DFA for the mirror language: edges are reversed
// into an NFA whose fresh start reaches the old accepting states by
// epsilon, with the old start as the sole accept state, and the result
// is determinized again.
func Reverse(d *DFA) *DFA {
	n := State(d.NumStates())
	rev := &NFA{
		Start:  n,
		Accept: d.Start,
		trans:  make(map[State]map[rune]StateSet),
	}
	for s := State(0); s < n; s++ {
		for r, t := range d.trans[s] {
			rev.addEdge(t, r, s)
		}
		if d.accept[s] {
			rev.addEdge(rev.Start, Epsilon, s)
		}
	}
	return Determinize(rev)
}

func unionRunes(a, b []rune) []rune {
	seen := make(map[rune]struct{}, len(a)+len(b))
	for _, r := range a {
		seen[r] = struct{}{}
	}
	for _, r := range b {
		seen[r] = struct{}{}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
