package trackca

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// compatible reports whether two hits satisfy the slope compatibility
// predicate: the angle each coordinate subtends with respect to the
// beam axis must stay under the configured slope caps.
func compatible(h0, h1 Hit, maxSlopeX, maxSlopeY float64) bool {
	hitDistance := math.Abs(h1.Z - h0.Z)
	return math.Abs(h1.X-h0.X) < maxSlopeX*hitDistance &&
		math.Abs(h1.Y-h0.Y) < maxSlopeY*hitDistance
}

// extrapolate predicts the transverse position at target.Z by
// extending the line through start and end. It reports ok=false for
// degenerate geometry (start and end sharing a z), which is silently
// treated as "no prediction" rather than an error.
func extrapolate(start, end, target Hit) (xPred, yPred float64, ok bool) {
	dzBase := end.Z - start.Z
	if dzBase == 0 {
		return 0, 0, false
	}
	td := 1.0 / dzBase
	tx := (end.X - start.X) * td
	ty := (end.Y - start.Y) * td

	dz := target.Z - start.Z
	return start.X + tx*dz, start.Y + ty*dz, true
}

// residualAndScatter extrapolates (start, end) to target and returns
// the signed transverse residual together with the scatter — the
// squared residual norm normalized by the squared z-gap between end
// and target. ok is false for any degenerate z difference encountered
// along the way.
func residualAndScatter(start, end, target Hit) (dx, dy, scatter float64, ok bool) {
	xPred, yPred, ok := extrapolate(start, end, target)
	if !ok {
		return 0, 0, 0, false
	}
	dx = xPred - target.X
	dy = yPred - target.Y

	denomZ := target.Z - end.Z
	if denomZ == 0 {
		return dx, dy, 0, false
	}

	residual := []float64{dx, dy}
	sumSquares := floats.Dot(residual, residual)
	scatter = sumSquares / (denomZ * denomZ)
	return dx, dy, scatter, true
}

// withinTolerance is the three-hit extrapolation check: given a
// predecessor's (start, end) and a candidate extension's end, it
// reports whether the residual and scatter stay within the configured
// caps, along with the scatter value (used downstream as χ²).
func withinTolerance(start, end, target Hit, opts Options) (scatter float64, ok bool) {
	dx, dy, scatter, valid := residualAndScatter(start, end, target)
	if !valid {
		return 0, false
	}
	return scatter, math.Abs(dx) < opts.MaxToleranceX &&
		math.Abs(dy) < opts.MaxToleranceY &&
		scatter < opts.MaxScatter
}

// sharedPoint reports whether a predecessor segment's end hit is the
// coordinate-equal junction with a successor segment's start hit
// — the junction point two segments must agree on to chain.
func sharedPoint(predecessorEnd, successorStart Hit) bool {
	return predecessorEnd.X == successorStart.X &&
		predecessorEnd.Y == successorStart.Y &&
		predecessorEnd.Z == successorStart.Z
}

// smallestPositive is the smallest positive representable float64,
// used as the zero-χ² guard so that no extension adds exactly zero to
// a track's χ². 1/smallestPositive still overflows to +Inf in float64,
// so in the ghost/clone ranking (1/χ²) tracks with such tiny χ² tie.
var smallestPositive = math.Nextafter(0, 1)
