package trackca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSegmentsStraightChain(t *testing.T) {
	event := straightChainEvent([]point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 10},
		{X: 2, Y: 2, Z: 20},
		{X: 3, Y: 3, Z: 30},
	}, 1)

	idx := buildSegments(event, DefaultOptions())
	require.Len(t, idx, event.NumberOfSensors-2)

	// sensor 0 (hit A) pairs with sensor 2 (hit B) and, since 0+4=4 < 7,
	// also with sensor 4 (hit C) as a skip bucket.
	require.Len(t, idx[0], 2)
	require.Len(t, idx[0][0], 1)
	assert.Equal(t, 1, idx[0][0][0].StartHit.ID)
	assert.Equal(t, 2, idx[0][0][0].EndHit.ID)
	require.Len(t, idx[0][1], 1)
	assert.Equal(t, 3, idx[0][1][0].EndHit.ID)

	// sensor 2 (hit B) pairs with sensor 4 (hit C) and, since 2+4=6 < 7,
	// also with sensor 6 (hit D) as a skip bucket.
	require.Len(t, idx[2], 2)
	require.Len(t, idx[2][0], 1)
	assert.Equal(t, 3, idx[2][0][0].EndHit.ID)
	require.Len(t, idx[2][1], 1)
	assert.Equal(t, 4, idx[2][1][0].EndHit.ID)
}

func TestBuildSegmentsBucketInvariant(t *testing.T) {
	// Every bucket must hold segments sharing exactly one right-endpoint
	// hit: the Neighbour Linker's short-circuit in linkSegment depends
	// on this to stop scanning a bucket at the first mismatch.
	left := Sensor{Number: 0, Hits: []Hit{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 0.1, Y: 0.1, Z: 0},
	}}
	right := Sensor{Number: 2, Hits: []Hit{
		{ID: 3, X: 0, Y: 0, Z: 10},
		{ID: 4, X: 5, Y: 5, Z: 10},
	}}

	buckets := appendRightSensorBuckets(nil, left, right, DefaultOptions())
	require.Len(t, buckets, 2)
	for _, bucket := range buckets {
		endID := -1
		for _, seg := range bucket {
			if endID == -1 {
				endID = seg.EndHit.ID
			}
			assert.Equal(t, endID, seg.EndHit.ID)
		}
	}
}

func TestBuildSegmentsSkipsIncompatiblePairs(t *testing.T) {
	left := Sensor{Number: 0, Hits: []Hit{{ID: 1, X: 0, Y: 0, Z: 0}}}
	right := Sensor{Number: 2, Hits: []Hit{{ID: 2, X: 100, Y: 100, Z: 10}}}

	buckets := appendRightSensorBuckets(nil, left, right, DefaultOptions())
	require.Len(t, buckets, 1)
	assert.Empty(t, buckets[0])
}

func TestBuildSegmentsTooFewSensors(t *testing.T) {
	event := Event{NumberOfSensors: 1, Sensors: []Sensor{{Number: 0}}}
	assert.Nil(t, buildSegments(event, DefaultOptions()))
}
