package automaton

// Closure returns the smallest superset of set closed under epsilon
// transitions, computed as a worklist fixpoint. It terminates because
// the NFA is finite and the result only grows; a single epsilon hop is
// not enough, since epsilon edges chain.
func (n *NFA) Closure(set StateSet) StateSet {
	result := make(StateSet, len(set))
	frontier := make([]State, 0, len(set))
	for s := range set {
		result[s] = struct{}{}
		frontier = append(frontier, s)
	}

	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for to := range n.trans[s][Epsilon] {
			if !result.Contains(to) {
				result[to] = struct{}{}
				frontier = append(frontier, to)
			}
		}
	}
	return result
}

// move collects the destinations of transitions labeled exactly c from
// any state in set. Epsilon never matches: it is not a literal label.
func (n *NFA) move(set StateSet, c rune) StateSet {
	dests := make(StateSet)
	for s := range set {
		for to := range n.trans[s][c] {
			dests[to] = struct{}{}
		}
	}
	return dests
}

// Step returns the epsilon-closed successor set of set after consuming
// one literal rune: close first so literal transitions from every
// epsilon-reachable state count, move on c, then close again. A label
// with no applicable transition yields the empty set.
func (n *NFA) Step(set StateSet, c rune) StateSet {
	return n.Closure(n.move(n.Closure(set), c))
}
