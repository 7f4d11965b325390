// Package history is the append-only audit log of settled hands: a
// side channel for post-hoc inspection, never consulted by the engine
// to reconstruct live state (stacks and seat status are never
// persisted across a restart, per the table's scope).
package history

import (
	"database/sql"
	"embed"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Record is one settled hand, as written to the audit database and
// cached in memory for cheap recent-hand lookups.
type Record struct {
	HandID        string
	DealerSeat    int
	WinnerSeat    int
	PotAmount     int64
	ShortCircuit  bool
}

// Store is a pure-Go (no cgo) sqlite audit log backed by a bounded
// in-memory cache of the most recently settled hands.
type Store struct {
	db    *sql.DB
	cache *lru.Cache[string, Record]
}

// recentCacheSize bounds how many settled hands Store keeps in memory
// for Lookup without round-tripping to sqlite.
const recentCacheSize = 256

// Open opens (creating if absent) the sqlite audit database at path and
// applies any pending goose migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}

	cache, err := lru.New[string, Record](recentCacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, cache: cache}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordHand appends a settled hand to the audit log and the recent
// cache.
func (s *Store) RecordHand(rec Record) error {
	_, err := s.db.Exec(
		`INSERT INTO hands (hand_id, dealer_seat, winner_seat, pot_amount, short_circuit) VALUES (?, ?, ?, ?, ?)`,
		rec.HandID, rec.DealerSeat, rec.WinnerSeat, rec.PotAmount, rec.ShortCircuit,
	)
	if err != nil {
		return fmt.Errorf("history: insert hand %s: %w", rec.HandID, err)
	}
	s.cache.Add(rec.HandID, rec)
	return nil
}

// Lookup returns a settled hand by ID, checking the in-memory cache
// before falling back to sqlite.
func (s *Store) Lookup(handID string) (Record, bool) {
	if rec, ok := s.cache.Get(handID); ok {
		return rec, true
	}
	var rec Record
	var shortCircuit int
	row := s.db.QueryRow(
		`SELECT hand_id, dealer_seat, winner_seat, pot_amount, short_circuit FROM hands WHERE hand_id = ?`,
		handID,
	)
	if err := row.Scan(&rec.HandID, &rec.DealerSeat, &rec.WinnerSeat, &rec.PotAmount, &shortCircuit); err != nil {
		return Record{}, false
	}
	rec.ShortCircuit = shortCircuit != 0
	s.cache.Add(rec.HandID, rec)
	return rec, true
}
