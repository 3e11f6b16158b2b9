package trackca

// prefixNode is a persistent, structurally-shared cons cell for a
// track's hit chain: branches at a recursion point share every hit
// appended before the branch instead of each deep-copying the
// accumulated slice.
type prefixNode struct {
	hit  Hit
	prev *prefixNode
}

// hits materializes the chain rooted at n into the right-to-left
// order Track.Hits is kept in: n itself (the most
// recently appended, leftmost-so-far hit) last, the earliest-appended
// (rightmost) hit first.
func (n *prefixNode) hits() []Hit {
	var reversed []Hit
	for cur := n; cur != nil; cur = cur.prev {
		reversed = append(reversed, cur.hit)
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

// completion is a terminal (no further extension fired) back-walk
// result: a candidate Track in waiting.
type completion struct {
	tail   *prefixNode
	length int
	chi2   float64
}

// extractCandidate is a predecessor segment admitted by the
// shared-point + tolerance test, carrying the χ² it would contribute
// if selected.
type extractCandidate struct {
	seg  *Segment
	chi2 float64
}

// workItem is one frame of the back-walk's explicit work stack,
// used in place of recursion to keep stack depth bounded.
type workItem struct {
	seg         *Segment
	sensorIndex int
	tail        *prefixNode
	length      int
	chi2        float64
}

// backWalk enumerates every maximal compatible extension of seed,
// depth-first in the same left-to-right order the recursive source
// algorithm visits them, and returns one completion per terminus.
//
// Unlike the Neighbour Linker, this scan does not apply the bucket
// short-circuit: it tests every segment of every predecessor bucket,
// skipping shared-point mismatches instead of stopping at the first
// one, even though these are the same buckets the Neighbour Linker
// scans.
func backWalk(idx segmentIndex, seed workItem, opts Options) []completion {
	stack := []workItem{seed}
	var out []completion

	for len(stack) > 0 {
		top := len(stack) - 1
		item := stack[top]
		stack = stack[:top]

		predSensorIdx := item.sensorIndex - 2
		var candidates []extractCandidate
		if predSensorIdx >= 0 {
			for _, bucket := range idx[predSensorIdx] {
				for _, predecessor := range bucket {
					if !sharedPoint(predecessor.EndHit, item.seg.StartHit) {
						continue
					}
					if chi2, ok := withinTolerance(predecessor.StartHit, predecessor.EndHit, item.seg.EndHit, opts); ok {
						candidates = append(candidates, extractCandidate{seg: predecessor, chi2: chi2})
					}
				}
			}
		}

		var extensions []workItem
		for _, c := range candidates {
			if c.seg.State >= item.seg.State || c.seg.Used {
				continue
			}
			chi2 := c.chi2
			if chi2 == 0 {
				chi2 = smallestPositive
			}
			extensions = append(extensions, workItem{
				seg:         c.seg,
				sensorIndex: predSensorIdx,
				tail:        &prefixNode{hit: c.seg.StartHit, prev: item.tail},
				length:      item.length + 1,
				chi2:        item.chi2 + chi2,
			})
		}

		if len(extensions) == 0 {
			out = append(out, completion{tail: item.tail, length: item.length, chi2: item.chi2})
			continue
		}

		// Push in reverse so the first extension is popped (and its
		// whole subtree exhausted) before the next one — preserving
		// the same left-to-right, depth-first completion order the
		// recursive form would produce.
		for i := len(extensions) - 1; i >= 0; i-- {
			stack = append(stack, extensions[i])
		}
	}
	return out
}

// betterCompletion reports whether a should be preferred over the
// current best: longer chains win, then lower χ² (smoother lines).
// Equal keys leave the earlier (already-selected) completion in
// place, which is how ties are broken by insertion order.
func betterCompletion(a, b completion) bool {
	if a.length != b.length {
		return a.length > b.length
	}
	return a.chi2 < b.chi2
}

// selectBest picks the completion extraction keeps for a seed:
// (length desc, chi2 asc) — longer, smoother chains win.
func selectBest(completions []completion) completion {
	best := completions[0]
	for _, c := range completions[1:] {
		if betterCompletion(c, best) {
			best = c
		}
	}
	return best
}

// extractTracks is the Track Extractor stage. It walks
// sensors from the highest builder index down to 2, seeding one
// back-walk per unused segment with state > 1, and keeps the
// best-ranked completion per seed.
func extractTracks(idx segmentIndex, opts Options) []Track {
	var tracks []Track
	for s := len(idx) - 1; s >= 2; s-- {
		for _, bucket := range idx[s] {
			for _, seg := range bucket {
				if seg.State <= 1 || seg.Used {
					continue
				}

				endNode := &prefixNode{hit: seg.EndHit}
				startNode := &prefixNode{hit: seg.StartHit, prev: endNode}

				completions := backWalk(idx, workItem{
					seg:         seg,
					sensorIndex: s,
					tail:        startNode,
					length:      2,
					chi2:        0,
				}, opts)

				best := selectBest(completions)
				tracks = append(tracks, Track{
					Hits:   best.tail.hits(),
					Length: best.length,
					Chi2:   best.chi2,
				})
			}
		}
	}
	return tracks
}
