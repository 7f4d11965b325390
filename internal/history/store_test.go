package history

import (
	"path/filepath"
	"testing"
)

func TestStore_RecordAndLookup(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "audit.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	rec := Record{HandID: "hand-1", DealerSeat: 2, WinnerSeat: 4, PotAmount: 1500, ShortCircuit: true}
	if err := s.RecordHand(rec); err != nil {
		t.Fatalf("RecordHand: %v", err)
	}

	got, ok := s.Lookup("hand-1")
	if !ok {
		t.Fatalf("expected hand-1 to be found")
	}
	if got != rec {
		t.Fatalf("lookup mismatch: got %+v want %+v", got, rec)
	}

	if _, ok := s.Lookup("missing"); ok {
		t.Fatalf("expected missing hand to not be found")
	}
}

func TestStore_LookupFallsBackToSqliteAfterCacheEviction(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "audit.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	rec := Record{HandID: "hand-evict", DealerSeat: 0, WinnerSeat: 1, PotAmount: 10}
	if err := s.RecordHand(rec); err != nil {
		t.Fatalf("RecordHand: %v", err)
	}
	s.cache.Remove("hand-evict")

	got, ok := s.Lookup("hand-evict")
	if !ok {
		t.Fatalf("expected hand-evict to be found via sqlite fallback")
	}
	if got != rec {
		t.Fatalf("lookup mismatch: got %+v want %+v", got, rec)
	}
}
