package trackca

import "sort"

// resolveGhostsClones is the Ghost/Clone Resolver. It orders
// candidates longest-first, then smoothest-first (smallest
// χ²), and greedily admits a candidate only if fewer than
// maxSharedHitRatio of its hits were already claimed by a previously
// admitted track.
func resolveGhostsClones(tracks []Track, maxSharedHitRatio float64) []Track {
	ordered := make([]Track, len(tracks))
	copy(ordered, tracks)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Length != b.Length {
			return a.Length > b.Length
		}
		// Smaller χ² (smoother) sorts first, i.e. larger 1/χ².
		return 1/a.Chi2 > 1/b.Chi2
	})

	usedHitIDs := make(map[int]bool)
	admitted := make([]Track, 0, len(ordered))

	for _, t := range ordered {
		overlap := 0
		for _, h := range t.Hits {
			if usedHitIDs[h.ID] {
				overlap++
			}
		}

		if float64(overlap)/float64(t.Length) >= maxSharedHitRatio {
			continue
		}

		for _, h := range t.Hits {
			usedHitIDs[h.ID] = true
		}
		admitted = append(admitted, t)
	}

	return admitted
}
