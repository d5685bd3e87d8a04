package automaton

// Minimize returns a language-equivalent DFA with the minimum number
// of states, via Hopcroft partition refinement. The transition table
// is completed with an implicit sink over the recorded alphabet first;
// refining a partial transition function directly would conflate
// "no transition" with whatever block happens to be missing it. The
// sink's block is dropped again from the result, so the output stays
// partial like its input.
func Minimize(d *DFA) *DFA {
	n := d.NumStates()
	if n == 0 {
		return d
	}

	sink := State(n)
	step := func(s State, c rune) State {
		if s == sink {
			return sink
		}
		if t, ok := d.trans[s][c]; ok {
			return t
		}
		return sink
	}

	// Initial partition: accepting vs non-accepting (sink included).
	acc := make(StateSet)
	rej := NewStateSet(sink)
	for s := State(0); s < sink; s++ {
		if d.accept[s] {
			acc[s] = struct{}{}
		} else {
			rej[s] = struct{}{}
		}
	}
	partitions := make([]StateSet, 0, 2)
	if len(acc) > 0 {
		partitions = append(partitions, acc)
	}
	partitions = append(partitions, rej)

	work := make([]int, len(partitions))
	inWork := make([]bool, len(partitions))
	for i := range work {
		work[i] = i
		inWork[i] = true
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		inWork[idx] = false
		splitter := partitions[idx]

		for _, c := range d.alphabet {
			// Preimage of the splitter under c.
			pre := make(StateSet)
			for s := State(0); s <= sink; s++ {
				if splitter.Contains(step(s, c)) {
					pre[s] = struct{}{}
				}
			}
			if len(pre) == 0 {
				continue
			}

			for p := 0; p < len(partitions); p++ {
				inter := make(StateSet)
				diff := make(StateSet)
				for s := range partitions[p] {
					if pre.Contains(s) {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				partitions[p] = inter
				partitions = append(partitions, diff)
				q := len(partitions) - 1
				inWork = append(inWork, false)

				switch {
				case inWork[p]:
					// The pending block split in two; both
					// halves must be processed.
					inWork[q] = true
					work = append(work, q)
				case len(inter) <= len(diff):
					inWork[p] = true
					work = append(work, p)
				default:
					inWork[q] = true
					work = append(work, q)
				}
			}
		}
	}

	// Rebuild a dense DFA over the blocks, walking from the start's
	// block and skipping edges into the sink's block.
	classOf := make([]int, n+1)
	for ci, block := range partitions {
		for s := range block {
			classOf[s] = ci
		}
	}
	deadClass := classOf[sink]

	min := &DFA{alphabet: d.alphabet}
	ids := make(map[int]State)
	register := func(ci int) State {
		id := State(len(min.trans))
		ids[ci] = id
		set := make(StateSet)
		accept := false
		for s := range partitions[ci] {
			if s == sink {
				continue
			}
			accept = accept || d.accept[s]
			for ns := range d.sets[s] {
				set[ns] = struct{}{}
			}
		}
		min.trans = append(min.trans, make(map[rune]State))
		min.accept = append(min.accept, accept)
		min.sets = append(min.sets, set)
		return id
	}

	startClass := classOf[d.Start]
	min.Start = register(startClass)
	queue := []int{startClass}
	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]
		id := ids[ci]

		var rep State = sink
		for s := range partitions[ci] {
			if s != sink {
				rep = s
				break
			}
		}
		if rep == sink {
			continue
		}
		for _, c := range d.alphabet {
			target := classOf[step(rep, c)]
			if target == deadClass {
				continue
			}
			tid, seen := ids[target]
			if !seen {
				tid = register(target)
				queue = append(queue, target)
			}
			min.trans[id][c] = tid
		}
	}
	return min
}
