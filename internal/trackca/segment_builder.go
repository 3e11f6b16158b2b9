package trackca

// buildSegments constructs the three-level segment index. For every
// sensor s in [0, N-2) it pairs each hit on s with
// every compatible hit on s+2, and — unless s+4 falls outside the
// event — with every compatible hit on s+4. Segments are bucketed by
// their right-endpoint hit, s+2 buckets preceding s+4 buckets, which
// is the invariant the Neighbour Linker's bucket short-circuit
// depends on.
func buildSegments(event Event, opts Options) segmentIndex {
	n := event.NumberOfSensors
	if n < 2 {
		return nil
	}

	idx := make(segmentIndex, n-2)
	for s := 0; s < n-2; s++ {
		left := event.Sensors[s]

		buckets := make(sensorSegments, 0, len(event.Sensors[s+2].Hits))
		buckets = appendRightSensorBuckets(buckets, left, event.Sensors[s+2], opts)

		if s+4 < n {
			buckets = appendRightSensorBuckets(buckets, left, event.Sensors[s+4], opts)
		}

		idx[s] = buckets
	}
	return idx
}

// appendRightSensorBuckets emits one bucket per hit on right, each
// holding the segments from left's hits compatible with that
// particular right hit, in left-hit loop-emission order.
func appendRightSensorBuckets(buckets sensorSegments, left, right Sensor, opts Options) sensorSegments {
	for _, endHit := range right.Hits {
		bucket := make(segmentBucket, 0, len(left.Hits))
		for _, startHit := range left.Hits {
			if compatible(startHit, endHit, opts.MaxSlopeX, opts.MaxSlopeY) {
				bucket = append(bucket, &Segment{
					StartHit: startHit,
					EndHit:   endHit,
					State:    1,
					NewState: 1,
				})
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}
