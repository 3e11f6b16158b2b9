package trackca

import "fmt"

// Options is the construction-time configuration record for the
// pipeline. There is no global state and the core never reads the
// environment, filesystem, or stdin to populate it.
type Options struct {
	// MaxSlopeX, MaxSlopeY cap the compatibility angle with respect
	// to the beam axis (default 0.7, 0.7).
	MaxSlopeX float64
	MaxSlopeY float64

	// MaxToleranceX, MaxToleranceY cap the extrapolation residual
	// (default 0.4, 0.4).
	MaxToleranceX float64
	MaxToleranceY float64

	// MaxScatter caps the three-hit extrapolation scatter (default 0.4).
	MaxScatter float64

	// AllowedSkipSensors is the maximum number of consecutive missing
	// planes the Segment Builder tolerates (default 1: it pairs with
	// sensor+2 and sensor+4 only).
	AllowedSkipSensors int

	// MinTrackLength is the minimum hit count a track must reach to
	// survive the Length Filter (default 3, i.e. "longer than 2").
	MinTrackLength int

	// MaxSharedHitRatio is the ghost/clone overlap cap (default 0.3).
	MaxSharedHitRatio float64
}

// DefaultOptions returns the tuned default parameter set for the
// track-finding pipeline.
func DefaultOptions() Options {
	return Options{
		MaxSlopeX:          0.7,
		MaxSlopeY:          0.7,
		MaxToleranceX:      0.4,
		MaxToleranceY:      0.4,
		MaxScatter:         0.4,
		AllowedSkipSensors: 1,
		MinTrackLength:     3,
		MaxSharedHitRatio:  0.3,
	}
}

// Validate checks that every option is in its acceptable range.
func (o Options) Validate() error {
	if o.MaxSlopeX <= 0 {
		return fmt.Errorf("trackca: MaxSlopeX must be positive, got %f", o.MaxSlopeX)
	}
	if o.MaxSlopeY <= 0 {
		return fmt.Errorf("trackca: MaxSlopeY must be positive, got %f", o.MaxSlopeY)
	}
	if o.MaxToleranceX <= 0 {
		return fmt.Errorf("trackca: MaxToleranceX must be positive, got %f", o.MaxToleranceX)
	}
	if o.MaxToleranceY <= 0 {
		return fmt.Errorf("trackca: MaxToleranceY must be positive, got %f", o.MaxToleranceY)
	}
	if o.MaxScatter <= 0 {
		return fmt.Errorf("trackca: MaxScatter must be positive, got %f", o.MaxScatter)
	}
	// AllowedSkipSensors is pinned to 1 by the Segment Builder, which
	// only ever pairs sensor s with s+2 and s+4. A value other than 1
	// would require the builder to emit additional skip widths, which
	// this implementation does not do.
	if o.AllowedSkipSensors != 1 {
		return fmt.Errorf("trackca: AllowedSkipSensors must be 1, got %d", o.AllowedSkipSensors)
	}
	if o.MinTrackLength < 1 {
		return fmt.Errorf("trackca: MinTrackLength must be positive, got %d", o.MinTrackLength)
	}
	if o.MaxSharedHitRatio < 0 || o.MaxSharedHitRatio > 1 {
		return fmt.Errorf("trackca: MaxSharedHitRatio must be in [0, 1], got %f", o.MaxSharedHitRatio)
	}
	return nil
}
