package trackca

// linkNeighbours populates LeftNeighbours for every segment in
// sensors ≥ 2. Segments in idx[0] and idx[1] have no earlier sensor
// to link against and stay at their initial state.
func linkNeighbours(idx segmentIndex, opts Options) {
	for s := 2; s < len(idx); s++ {
		for _, bucket := range idx[s] {
			for _, seg := range bucket {
				linkSegment(idx, seg, s, opts)
			}
		}
	}
}

// linkSegment scans every bucket of sensor s-2 for admissible
// predecessors of seg. Within a bucket — which, by the Segment
// Builder's invariant, holds only segments sharing one right-endpoint
// hit — the scan stops at the first shared-point mismatch, since every
// remaining entry in that bucket shares the same (mismatching)
// endpoint.
func linkSegment(idx segmentIndex, seg *Segment, s int, opts Options) {
	for bucketIdx, bucket := range idx[s-2] {
		for posIdx, predecessor := range bucket {
			if !sharedPoint(predecessor.EndHit, seg.StartHit) {
				break
			}
			if _, ok := withinTolerance(predecessor.StartHit, predecessor.EndHit, seg.EndHit, opts); ok {
				seg.LeftNeighbours = append(seg.LeftNeighbours, segmentRef{
					Bucket:   bucketIdx,
					Position: posIdx,
				})
			}
		}
	}
}
