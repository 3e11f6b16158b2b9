package trackca

// point is a compact (x, y, z) literal used to build fixture events.
type point struct {
	X, Y, Z float64
}

// straightChainEvent builds an Event for a perfectly straight chain of
// len(pts) hits, one per "station". Consecutive stations are placed 2
// sensor positions apart with an empty filler sensor in between, which
// is what the Segment Builder's "one-plane step" doublet actually
// requires to chain them: see DESIGN.md for why a dense, gap-free
// sensor array collapses every physical station gap to an unusable
// 1-position step.
func straightChainEvent(pts []point, firstHitID int) Event {
	n := 2*len(pts) - 1
	sensors := make([]Sensor, n)

	for i, p := range pts {
		pos := 2 * i
		sensors[pos] = Sensor{
			Number: pos,
			Z:      p.Z,
			Hits: []Hit{{
				ID:           firstHitID + i,
				X:            p.X,
				Y:            p.Y,
				Z:            p.Z,
				HitNumber:    0,
				SensorNumber: pos,
			}},
		}
	}
	for i := 1; i < n; i += 2 {
		sensors[i] = Sensor{Number: i, Z: (sensors[i-1].Z + sensors[i+1].Z) / 2}
	}

	var hits []Hit
	for _, s := range sensors {
		hits = append(hits, s.Hits...)
	}

	return Event{
		NumberOfSensors: n,
		NumberOfHits:    len(hits),
		Hits:            hits,
		Sensors:         sensors,
	}
}

// mergeEvents overlays multiple events built over the same sensor
// geometry (e.g. two straightChainEvent results with the same point
// count) into one Event whose sensors each carry every chain's hit.
// Sensors must line up positionally and in Z.
func mergeEvents(events ...Event) Event {
	n := events[0].NumberOfSensors
	sensors := make([]Sensor, n)
	for i := 0; i < n; i++ {
		sensors[i] = Sensor{Number: i, Z: events[0].Sensors[i].Z}
	}
	var hits []Hit
	for _, ev := range events {
		for i, s := range ev.Sensors {
			sensors[i].Hits = append(sensors[i].Hits, s.Hits...)
		}
		hits = append(hits, ev.Hits...)
	}
	return Event{
		NumberOfSensors: n,
		NumberOfHits:    len(hits),
		Hits:            hits,
		Sensors:         sensors,
	}
}

// hitIDs extracts hit IDs in order, for compact test assertions.
func hitIDs(hits []Hit) []int {
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	return ids
}
