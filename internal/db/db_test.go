package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer d.Close()

	// Schema should be in place.
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM chat_events`).Scan(&n); err != nil {
		t.Fatalf("querying chat_events: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty chat_events, got %d rows", n)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "flaggy.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO chat_events (id, session_id, outcome) VALUES ('e1', 's1', 'matched')`); err != nil {
		t.Fatalf("inserting event: %v", err)
	}
}

func TestOutcomeCheckConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer d.Close()

	_, err = d.Exec(`INSERT INTO chat_events (id, session_id, outcome) VALUES ('e1', 's1', 'bogus')`)
	if err == nil {
		t.Error("expected CHECK constraint violation for unknown outcome")
	}
}
