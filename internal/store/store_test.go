package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "focusday.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background(), KeyTheme, `"dark"`); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: data survives and migration is skipped.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	val, ok, err := s2.Load(context.Background(), KeyTheme)
	if err != nil || !ok {
		t.Fatalf("Load after reopen: ok=%v err=%v", ok, err)
	}
	if val != `"dark"` {
		t.Fatalf("Load after reopen = %q", val)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "focusday.db" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Key-value operations
// ============================================================

func TestLoadMissingKey(t *testing.T) {
	s := newTestStore(t)

	val, ok, err := s.Load(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if ok || val != "" {
		t.Fatalf("expected missing key, got ok=%v val=%q", ok, val)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, KeySectors, `[{"id":"a"}]`); err != nil {
		t.Fatal(err)
	}
	val, ok, err := s.Load(ctx, KeySectors)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || val != `[{"id":"a"}]` {
		t.Fatalf("Load = %q, %v", val, ok)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Save(ctx, KeyLastResetDate, `"2024-03-14"`)
	s.Save(ctx, KeyLastResetDate, `"2024-03-15"`)

	val, _, _ := s.Load(ctx, KeyLastResetDate)
	if val != `"2024-03-15"` {
		t.Fatalf("expected overwrite, got %q", val)
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Save(ctx, KeyDailyStats, `[]`)
	if err := s.Clear(ctx, KeyDailyStats); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Load(ctx, KeyDailyStats); ok {
		t.Fatal("expected key to be cleared")
	}

	// Clearing again is fine.
	if err := s.Clear(ctx, KeyDailyStats); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestEntriesOrderedByKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Save(ctx, KeyTheme, `"light"`)
	s.Save(ctx, KeyDailyStats, `[]`)
	s.Save(ctx, KeySectors, `[]`)

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{KeyDailyStats, KeySectors, KeyTheme}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Key != want[i] {
			t.Fatalf("entry %d: got %q, want %q", i, e.Key, want[i])
		}
		if e.UpdatedAt.IsZero() {
			t.Fatalf("entry %q has zero UpdatedAt", e.Key)
		}
	}
}

func TestLoadCanceledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := s.Load(ctx, KeyTheme); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
