package trackca

import "errors"

// Errors returned at the core boundary. Degenerate geometry (two hits
// sharing a z) is recoverable and local — it is silently skipped
// inside the geometry helpers, never surfaced as one of these.
var (
	// ErrNegativeSensorCount is returned by NewEvent when
	// NumberOfSensors is negative.
	ErrNegativeSensorCount = errors.New("trackca: negative sensor count")

	// ErrHitIndexOutOfRange is returned by NewEvent when a hit's
	// SensorNumber lies outside [0, number of sensors).
	ErrHitIndexOutOfRange = errors.New("trackca: hit index out of range")

	// ErrSensorOrder is returned by NewEvent when sensors are not
	// ordered by non-decreasing Z, violating Sensor's ordering
	// invariant.
	ErrSensorOrder = errors.New("trackca: sensors not ordered by z")
)
