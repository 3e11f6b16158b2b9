// Command trackfind loads a single JSON event fixture, runs the
// cellular-automaton track finder over it, and prints the
// reconstructed tracks. Optionally it records the result into a
// fixturestore database, or verifies it against a previously recorded
// one for regression checking.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/juliusr91/velopix-tracking/internal/fixturestore"
	"github.com/juliusr91/velopix-tracking/internal/trackca"
)

var (
	input   = flag.String("input", "", "path to a JSON event fixture (required)")
	dbFile  = flag.String("db", "", "path to a fixturestore sqlite database (required for -record/-verify)")
	record  = flag.String("record", "", "save the run's tracks as a new golden fixture under this name")
	verify  = flag.String("verify", "", "compare the run's tracks against the named golden fixture")
	maxScat = flag.Float64("max-scatter", trackca.DefaultOptions().MaxScatter, "maximum three-hit extrapolation scatter")
	minLen  = flag.Int("min-track-length", trackca.DefaultOptions().MinTrackLength, "minimum accepted track length")
)

func main() {
	flag.Parse()

	if *input == "" {
		log.Fatal("trackfind: -input is required")
	}

	event, err := loadEvent(*input)
	if err != nil {
		log.Fatalf("trackfind: %v", err)
	}

	opts := trackca.DefaultOptions()
	opts.MaxScatter = *maxScat
	opts.MinTrackLength = *minLen

	result, err := trackca.Run(event, opts)
	if err != nil {
		log.Fatalf("trackfind: run: %v", err)
	}

	log.Printf("segments built=%d rounds=%d seeds=%d extracted=%d after-length-filter=%d accepted=%d",
		result.Stats.SegmentsBuilt, result.Stats.EvolutionRounds, result.Stats.SeedsConsidered,
		result.Stats.TracksExtracted, result.Stats.TracksAfterLengthFilter, result.Stats.TracksAccepted)

	for i, track := range result.Tracks {
		fmt.Printf("track %d: length=%d chi2=%g hits=%v\n", i, track.Length, track.Chi2, hitIDs(track.Hits))
	}

	if *record == "" && *verify == "" {
		return
	}
	if *dbFile == "" {
		log.Fatal("trackfind: -db is required with -record or -verify")
	}

	store, err := fixturestore.Open(*dbFile)
	if err != nil {
		log.Fatalf("trackfind: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	switch {
	case *record != "":
		if _, err := store.Save(ctx, *record, event, result.Tracks); err != nil {
			log.Fatalf("trackfind: record: %v", err)
		}
		log.Printf("recorded golden fixture %q", *record)
	case *verify != "":
		if err := verifyAgainstFixture(ctx, store, *verify, result.Tracks); err != nil {
			log.Fatalf("trackfind: verify %q: %v", *verify, err)
		}
		log.Printf("verify %q: OK (%d tracks matched)", *verify, len(result.Tracks))
	}
}

func loadEvent(path string) (trackca.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return trackca.Event{}, fmt.Errorf("read %s: %w", path, err)
	}

	var sensors []trackca.Sensor
	if err := json.Unmarshal(data, &sensors); err != nil {
		return trackca.Event{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return trackca.NewEvent(sensors)
}

func verifyAgainstFixture(ctx context.Context, store *fixturestore.Store, name string, got []trackca.Track) error {
	fixture, err := store.LoadByName(ctx, name)
	if err != nil {
		return err
	}
	if len(fixture.ExpectedTracks) != len(got) {
		return fmt.Errorf("expected %d tracks, got %d", len(fixture.ExpectedTracks), len(got))
	}
	for i := range got {
		want := fixture.ExpectedTracks[i]
		if want.Length != got[i].Length {
			return fmt.Errorf("track %d: expected length %d, got %d", i, want.Length, got[i].Length)
		}
		if fmt.Sprint(hitIDs(want.Hits)) != fmt.Sprint(hitIDs(got[i].Hits)) {
			return fmt.Errorf("track %d: expected hits %v, got %v", i, hitIDs(want.Hits), hitIDs(got[i].Hits))
		}
	}
	return nil
}

func hitIDs(hits []trackca.Hit) []int {
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	return ids
}
