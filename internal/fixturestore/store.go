package fixturestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/juliusr91/velopix-tracking/internal/trackca"
)

// Store is a thin wrapper over a sqlite-backed fixture table: an
// embedded *sql.DB plus domain-specific methods, no ORM layer between
// them.
type Store struct {
	db *sql.DB
}

// Fixture is one recorded (event, expected tracks) pair.
type Fixture struct {
	ID             uuid.UUID
	Name           string
	Event          trackca.Event
	ExpectedTracks []trackca.Track
	RecordedAt     time.Time
}

// Open creates or attaches to a sqlite database at path and ensures
// the fixtures table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("fixturestore: open %s: %w", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS fixtures (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			event_json TEXT NOT NULL,
			tracks_json TEXT NOT NULL,
			recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("fixturestore: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a new fixture under name and returns its id. Existing
// fixtures with the same name are kept; LoadByName returns the most
// recently recorded one.
func (s *Store) Save(ctx context.Context, name string, event trackca.Event, tracks []trackca.Track) (uuid.UUID, error) {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return uuid.Nil, fmt.Errorf("fixturestore: marshal event: %w", err)
	}
	tracksJSON, err := json.Marshal(tracks)
	if err != nil {
		return uuid.Nil, fmt.Errorf("fixturestore: marshal tracks: %w", err)
	}

	id := uuid.New()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fixtures (id, name, event_json, tracks_json)
		VALUES (?, ?, ?, ?)
	`, id.String(), name, string(eventJSON), string(tracksJSON))
	if err != nil {
		return uuid.Nil, fmt.Errorf("fixturestore: insert %s: %w", name, err)
	}

	return id, nil
}

// Load fetches a fixture by id.
func (s *Store) Load(ctx context.Context, id uuid.UUID) (Fixture, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, event_json, tracks_json, recorded_at
		FROM fixtures WHERE id = ?
	`, id.String())
	return scanFixture(row)
}

// LoadByName fetches the most recently recorded fixture with the given
// name.
func (s *Store) LoadByName(ctx context.Context, name string) (Fixture, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, event_json, tracks_json, recorded_at
		FROM fixtures WHERE name = ?
		ORDER BY recorded_at DESC, rowid DESC LIMIT 1
	`, name)
	return scanFixture(row)
}

// List returns every recorded fixture, most recent first.
func (s *Store) List(ctx context.Context) ([]Fixture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, event_json, tracks_json, recorded_at
		FROM fixtures ORDER BY recorded_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("fixturestore: list: %w", err)
	}
	defer rows.Close()

	var fixtures []Fixture
	for rows.Next() {
		f, err := scanFixtureRow(rows)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFixture(row rowScanner) (Fixture, error) {
	return scanFixtureRow(row)
}

func scanFixtureRow(row rowScanner) (Fixture, error) {
	var (
		idStr, name, eventJSON, tracksJSON string
		recordedAt                         time.Time
	)
	if err := row.Scan(&idStr, &name, &eventJSON, &tracksJSON, &recordedAt); err != nil {
		return Fixture{}, fmt.Errorf("fixturestore: scan: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixturestore: parse id %s: %w", idStr, err)
	}

	var event trackca.Event
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return Fixture{}, fmt.Errorf("fixturestore: unmarshal event: %w", err)
	}
	var tracks []trackca.Track
	if err := json.Unmarshal([]byte(tracksJSON), &tracks); err != nil {
		return Fixture{}, fmt.Errorf("fixturestore: unmarshal tracks: %w", err)
	}

	return Fixture{
		ID:             id,
		Name:           name,
		Event:          event,
		ExpectedTracks: tracks,
		RecordedAt:     recordedAt,
	}, nil
}
