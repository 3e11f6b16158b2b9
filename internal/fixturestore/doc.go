// Package fixturestore persists golden event/track fixtures for
// regression-testing the trackca pipeline: a named Event together with
// the Track set a known-good run of Run produced for it, so a later
// change can be checked against a recorded result instead of a
// hand-maintained literal.
package fixturestore
