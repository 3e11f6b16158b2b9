package trackca

// Stats reports per-event bookkeeping alongside the reconstructed
// tracks: per-stage counters in the spirit of what a batch run would
// log.
type Stats struct {
	SegmentsBuilt           int
	EvolutionRounds         int
	SeedsConsidered         int
	TracksExtracted         int
	TracksAfterLengthFilter int
	TracksAccepted          int
}

// Result is the output of Run: the final, ghost-resolved track set in
// admission order, plus Stats.
type Result struct {
	Tracks []Track
	Stats  Stats
}

// Run executes the six-stage pipeline over a single event. It is a
// pure function of (event, opts): no state survives between calls,
// making Run safe to call repeatedly or concurrently over independent
// events.
//
// An event with fewer than 3 sensors, or with no segments surviving
// compatibility, yields an empty track list and no error. Options
// validation failures are returned as errors; this is the only
// failure mode Run itself can produce.
func Run(event Event, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	if event.NumberOfSensors < 3 {
		return Result{}, nil
	}

	idx := buildSegments(event, opts)

	segmentsBuilt := 0
	for _, sensor := range idx {
		for _, bucket := range sensor {
			segmentsBuilt += len(bucket)
		}
	}
	if segmentsBuilt == 0 {
		return Result{Stats: Stats{SegmentsBuilt: 0}}, nil
	}

	linkNeighbours(idx, opts)
	rounds := evolveStates(idx)

	seeds := 0
	for _, sensor := range idx {
		for _, bucket := range sensor {
			for _, seg := range bucket {
				if seg.State > 1 && !seg.Used {
					seeds++
				}
			}
		}
	}

	extracted := extractTracks(idx, opts)
	afterLength := filterShortTracks(extracted, opts.MinTrackLength)
	accepted := resolveGhostsClones(afterLength, opts.MaxSharedHitRatio)

	return Result{
		Tracks: accepted,
		Stats: Stats{
			SegmentsBuilt:           segmentsBuilt,
			EvolutionRounds:         rounds,
			SeedsConsidered:         seeds,
			TracksExtracted:         len(extracted),
			TracksAfterLengthFilter: len(afterLength),
			TracksAccepted:          len(accepted),
		},
	}, nil
}

// NewEvent assembles an Event from an already-parsed sensor list,
// validating the invariants a well-formed event must satisfy
// (non-decreasing sensor z, in-range hit sensor numbers). Byte-level
// deserialization of an event description is the caller's job; this
// only validates and assembles a tree the caller has already parsed.
func NewEvent(sensors []Sensor) (Event, error) {
	numberOfSensors := len(sensors)
	if numberOfSensors < 0 {
		return Event{}, ErrNegativeSensorCount
	}

	var hits []Hit
	lastZ := 0.0
	for i, s := range sensors {
		if i > 0 && s.Z < lastZ {
			return Event{}, ErrSensorOrder
		}
		lastZ = s.Z
		hits = append(hits, s.Hits...)
	}

	for _, h := range hits {
		if h.SensorNumber < 0 || h.SensorNumber >= numberOfSensors {
			return Event{}, ErrHitIndexOutOfRange
		}
	}

	return Event{
		NumberOfSensors: numberOfSensors,
		NumberOfHits:    len(hits),
		Hits:            hits,
		Sensors:         sensors,
	}, nil
}
