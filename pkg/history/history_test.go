package history

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/driftcli/drift/pkg/route"
)

func TestNewEntry(t *testing.T) {
	e := NewEntry("3F4R", route.Displacement{Horizontal: 4, Vertical: 3})

	if e.ID == "" {
		t.Error("NewEntry should assign an ID")
	}
	if e.Route != "3F4R" {
		t.Errorf("Route = %q, want 3F4R", e.Route)
	}
	if e.Distance != 5 {
		t.Errorf("Distance = %v, want 5", e.Distance)
	}
	if e.Horizontal != 4 || e.Vertical != 3 {
		t.Errorf("displacement = (%v, %v), want (4, 3)", e.Horizontal, e.Vertical)
	}
	if e.CreatedAt.IsZero() {
		t.Error("NewEntry should set CreatedAt")
	}

	// IDs must be unique across entries.
	other := NewEntry("3F4R", route.Displacement{Horizontal: 4, Vertical: 3})
	if other.ID == e.ID {
		t.Error("entries should get distinct IDs")
	}
}

// storeTest exercises the Store contract against any backend.
func storeTest(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	entries, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh store should be empty, got %d entries", len(entries))
	}

	first := NewEntry("3F4R", route.Displacement{Horizontal: 4, Vertical: 3})
	first.CreatedAt = time.Now().UTC().Add(-time.Minute)
	second := NewEntry("10F", route.Displacement{Vertical: 10})

	if err := s.Put(ctx, first); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Put(ctx, second); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	entries, err = s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("entries[0] = %s, want newest entry first", entries[0].Route)
	}

	limited, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != second.ID {
		t.Errorf("List(1) = %v, want just the newest entry", limited)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	entries, err = s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("store should be empty after Clear, got %d entries", len(entries))
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	storeTest(t, s)
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	defer s.Close()
	storeTest(t, s)
}

func TestFileStoreSkipsCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	good := NewEntry("3F4R", route.Displacement{Horizontal: 4, Vertical: 3})
	if err := s.Put(ctx, good); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Put(ctx, Entry{ID: "corrupt"}); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	// Overwrite one file with garbage.
	if err := os.WriteFile(s.entryPath("corrupt"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	entries, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != good.ID {
		t.Errorf("List = %v, want only the intact entry", entries)
	}
}
