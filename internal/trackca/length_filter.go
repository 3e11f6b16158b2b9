package trackca

// filterShortTracks discards every track whose hit count falls below
// minLength (default minLength=3, i.e. "longer than 2 hits").
func filterShortTracks(tracks []Track, minLength int) []Track {
	kept := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Length >= minLength {
			kept = append(kept, t)
		}
	}
	return kept
}
