// Package trackca implements a cellular-automaton track finder for a
// layered silicon-strip detector.
//
// Given an Event of parallel sensor planes carrying 3-D hits, Run
// reconstructs straight-ish Tracks: ordered hit chains, one hit per
// plane (with limited tolerance for a single skipped plane), that
// plausibly come from a single particle trajectory.
//
// The pipeline runs in six stages, strictly left to right:
// segment building, neighbour linking, synchronous state evolution,
// recursive track extraction, a minimum-length filter, and a
// ghost/clone resolver. See each stage's file for details.
//
// The package is single-threaded and synchronous by design: there is
// no internal concurrency, no cancellation, and no caching of results
// across events. Kalman filtering, magnetic-field curvature modelling
// and cross-event scheduling are out of scope.
package trackca
