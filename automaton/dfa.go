package automaton

import "sort"

// DFA is the determinized automaton: dense state ids indexing a
// transition table, one transition per (state, rune). Each state keeps
// the NFA state set that defines it; match time never consults the
// sets, they exist for accept marking and inspection.
type DFA struct {
	Start    State
	trans    []map[rune]State
	accept   []bool
	sets     []StateSet
	alphabet []rune
}

// Determinize builds the DFA of epsilon-closed state sets reachable
// from the NFA's start closure. State sets are identified by value
// (StateSet.Key): two sets are the same DFA state exactly when their
// members are equal. A state is accepting iff its set contains the
// NFA's accept state; that marking is part of construction, not an
// afterthought.
func Determinize(n *NFA) *DFA {
	d := &DFA{alphabet: n.Alphabet()}
	ids := make(map[string]State)

	register := func(set StateSet) State {
		id := State(len(d.trans))
		ids[set.Key()] = id
		d.trans = append(d.trans, make(map[rune]State))
		d.accept = append(d.accept, set.Contains(n.Accept))
		d.sets = append(d.sets, set)
		return id
	}

	start := n.Closure(NewStateSet(n.Start))
	d.Start = register(start)

	queue := []StateSet{start}
	for len(queue) > 0 {
		set := queue[0]
		queue = queue[1:]
		id := ids[set.Key()]

		// Only runes that actually label a transition out of this
		// set can lead anywhere; there is no fixed alphabet.
		for _, c := range n.labels(set) {
			next := n.Step(set, c)
			if len(next) == 0 {
				continue
			}
			nid, seen := ids[next.Key()]
			if !seen {
				nid = register(next)
				queue = append(queue, next)
			}
			d.trans[id][c] = nid
		}
	}
	return d
}

// labels returns the sorted literal runes on transitions out of any
// state in set. Sorting keeps state numbering deterministic.
func (n *NFA) labels(set StateSet) []rune {
	seen := make(map[rune]struct{})
	for s := range set {
		for label := range n.trans[s] {
			if label != Epsilon {
				seen[label] = struct{}{}
			}
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Matches reports whether the DFA accepts the whole input: one table
// lookup per rune, a missing transition rejects immediately.
func (d *DFA) Matches(input string) bool {
	s := d.Start
	for _, c := range input {
		next, ok := d.trans[s][c]
		if !ok {
			return false
		}
		s = next
	}
	return d.accept[s]
}

// NumStates returns the number of DFA states.
func (d *DFA) NumStates() int { return len(d.trans) }

// IsAccept reports whether s is an accepting state.
func (d *DFA) IsAccept(s State) bool { return d.accept[s] }

// Set returns the NFA state set that defines DFA state s. Only
// automata tied to a source NFA carry defining sets: Determinize
// output, plus Complement and Minimize of it (where a sink or merged
// state maps to the empty set or a block union). States of a Product
// span two unrelated NFA id spaces and have no defining set; for them
// Set returns an empty set.
func (d *DFA) Set(s State) StateSet { return d.sets[s] }

// Alphabet returns the literal runes observed in the source NFA,
// sorted. Complement and minimization are relative to it.
func (d *DFA) Alphabet() []rune { return d.alphabet }
