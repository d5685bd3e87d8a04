package automaton

// Matches reports whether the NFA accepts the whole input. Matching is
// anchored at both ends: there is no substring search and no match
// span. The function is total; runes outside the pattern's alphabet
// simply empty the frontier.
func (n *NFA) Matches(input string) bool {
	frontier := n.Closure(NewStateSet(n.Start))
	for _, c := range input {
		frontier = n.Step(frontier, c)
		if len(frontier) == 0 {
			return false
		}
	}
	return frontier.Contains(n.Accept)
}
