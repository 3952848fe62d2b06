package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNew(t *testing.T) {
	s := newTestStore(t)

	// Migrations created the tables.
	for _, table := range []string{"events", "settings"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestEventInsertAndRecent(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	labels := []string{"OPEN_PALM", "FIST", "PEACE"}
	for i, label := range labels {
		prev := ""
		if i > 0 {
			prev = labels[i-1]
		}
		err := repo.Insert(&Event{
			ID:       uuid.NewString(),
			Label:    label,
			Previous: prev,
			At:       base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %s: %v", label, err)
		}
	}

	events, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Label != "PEACE" || events[2].Label != "OPEN_PALM" {
		t.Errorf("wrong order: %s ... %s", events[0].Label, events[2].Label)
	}
	if events[0].Previous != "FIST" {
		t.Errorf("previous = %q, want FIST", events[0].Previous)
	}
}

func TestEventRecentLimit(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Insert(&Event{
			ID:    uuid.NewString(),
			Label: "FIST",
			At:    base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	events, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}

	// Non-positive limits fall back to the default instead of erroring.
	events, err = repo.Recent(0)
	if err != nil {
		t.Fatalf("recent with zero limit: %v", err)
	}
	if len(events) != 5 {
		t.Errorf("got %d events, want 5", len(events))
	}
}

func TestEventInsertFillsTimestamp(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	e := &Event{ID: uuid.NewString(), Label: "OPEN_PALM"}
	if err := repo.Insert(e); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if e.At.IsZero() {
		t.Error("zero At not filled on insert")
	}
}

func TestEventCountByLabel(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	for _, label := range []string{"FIST", "FIST", "PEACE"} {
		err := repo.Insert(&Event{ID: uuid.NewString(), Label: label})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	counts, err := repo.CountByLabel()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts["FIST"] != 2 || counts["PEACE"] != 1 {
		t.Errorf("counts = %v, want FIST:2 PEACE:1", counts)
	}
	if _, ok := counts["OPEN_PALM"]; ok {
		t.Error("unexpected count for a label with no events")
	}
}

func TestEventRecentEmpty(t *testing.T) {
	s := newTestStore(t)

	events, err := s.Events().Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events from empty log", len(events))
	}
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if _, err := repo.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing key: err = %v, want ErrNotFound", err)
	}

	if err := repo.Set("tolerance", "0.03"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := repo.Get("tolerance")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "0.03" {
		t.Errorf("got %q, want %q", got, "0.03")
	}

	// Set replaces an existing value.
	if err := repo.Set("tolerance", "0.05"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	got, err = repo.Get("tolerance")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if got != "0.05" {
		t.Errorf("got %q, want %q", got, "0.05")
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s.Events().Insert(&Event{ID: uuid.NewString(), Label: "FIST"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	s.Close()

	// Reopening must rerun migrations without clobbering data.
	s, err = New(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s.Close()

	events, err := s.Events().Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events after reopen, want 1", len(events))
	}
}
