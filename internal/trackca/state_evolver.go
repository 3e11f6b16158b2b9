package trackca

// evolveStates runs the synchronous cellular-automaton fixed point to
// completion and reports how many rounds it took.
//
// Each round strictly separates the scan sweep (reads State, writes
// NewState) from the commit sweep (reads NewState, writes State) —
// fusing them would let a segment's own update observe a neighbour's
// already-committed state from the same round, breaking the
// required synchronous semantics.
func evolveStates(idx segmentIndex) int {
	rounds := 0
	for {
		rounds++
		changes := 0
		for s := 2; s < len(idx); s++ {
			for _, bucket := range idx[s] {
				for _, seg := range bucket {
					changes += checkNeighbours(idx, seg, s)
				}
			}
		}

		for s := 2; s < len(idx); s++ {
			for _, bucket := range idx[s] {
				for _, seg := range bucket {
					seg.State = seg.NewState
				}
			}
		}

		if changes == 0 {
			return rounds
		}
	}
}

// checkNeighbours raises seg.NewState by at most one per round: the
// first left neighbour found at the same state as seg increments
// NewState and stops the scan. This is what makes State count chain
// depth rather than the number of matching neighbours.
func checkNeighbours(idx segmentIndex, seg *Segment, s int) int {
	for _, ref := range seg.LeftNeighbours {
		left := idx.segment(ref, s-2)
		if left.State == seg.State {
			seg.NewState++
			return 1
		}
	}
	return 0
}
