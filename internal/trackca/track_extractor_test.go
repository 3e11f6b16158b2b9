package trackca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTracksStraightChain(t *testing.T) {
	event := straightChainEvent([]point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 10},
		{X: 2, Y: 2, Z: 20},
		{X: 3, Y: 3, Z: 30},
	}, 1)

	opts := DefaultOptions()
	idx := buildSegments(event, opts)
	linkNeighbours(idx, opts)
	evolveStates(idx)

	tracks := extractTracks(idx, opts)
	require.Len(t, tracks, 3, "the full chain plus a shorter three-hit prefix and a +4-skip alternate")

	assert.Equal(t, []int{4, 3, 2, 1}, hitIDs(tracks[0].Hits))
	assert.Equal(t, 4, tracks[0].Length)
	assert.InDelta(t, 2*smallestPositive, tracks[0].Chi2, 1e-9)

	assert.Equal(t, []int{3, 2, 1}, hitIDs(tracks[1].Hits))
	assert.Equal(t, 3, tracks[1].Length)

	assert.Equal(t, []int{4, 2, 1}, hitIDs(tracks[2].Hits))
	assert.Equal(t, 3, tracks[2].Length)
}

func TestPrefixNodeHitsReversesChain(t *testing.T) {
	a := Hit{ID: 1}
	b := Hit{ID: 2}
	c := Hit{ID: 3}

	tail := &prefixNode{hit: c, prev: &prefixNode{hit: b, prev: &prefixNode{hit: a}}}
	assert.Equal(t, []int{1, 2, 3}, hitIDs(tail.hits()))
}

func TestSelectBestPrefersLongerThenSmoother(t *testing.T) {
	short := completion{length: 3, chi2: 0.001}
	longButRough := completion{length: 4, chi2: 10}
	longAndSmooth := completion{length: 4, chi2: 0.5}

	best := selectBest([]completion{short, longButRough, longAndSmooth})
	assert.Equal(t, longAndSmooth, best)
}

func TestBackWalkNoPredecessorTerminatesImmediately(t *testing.T) {
	seg := &Segment{StartHit: Hit{ID: 1}, EndHit: Hit{ID: 2}, State: 2}
	idx := segmentIndex{} // no sensors below, predSensorIdx is always negative

	seed := workItem{
		seg:         seg,
		sensorIndex: 0,
		tail:        &prefixNode{hit: seg.StartHit, prev: &prefixNode{hit: seg.EndHit}},
		length:      2,
		chi2:        0,
	}
	completions := backWalk(idx, seed, DefaultOptions())
	require.Len(t, completions, 1)
	assert.Equal(t, 2, completions[0].length)
}
