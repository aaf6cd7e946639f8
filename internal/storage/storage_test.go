package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
	"github.com/gehtsoft-usa/go_shotcalc/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndList(t *testing.T) {
	store := openStore(t)

	s := input.New()
	for _, mv := range []string{"1200", "1350", "1500"} {
		if err := s.SetMuzzleVelocity(mv); err != nil {
			t.Fatal(err)
		}
		result, err := s.Simulate()
		if err != nil {
			t.Fatal(err)
		}
		saved, err := store.SaveRun(storage.NewRun("test", s, result))
		if err != nil {
			t.Fatal(err)
		}
		if saved.ID == 0 || saved.CreatedAt.IsZero() {
			t.Errorf("saved run has no ID or time: %+v", saved)
		}
	}

	count, err := store.CountRuns()
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("count %d, want 3", count)
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].MuzzleVelocity != 1500 || runs[1].MuzzleVelocity != 1350 {
		t.Errorf("runs are not newest first: %v, %v", runs[0].MuzzleVelocity, runs[1].MuzzleVelocity)
	}
	if runs[1].EffectiveRange != 44 || runs[1].Samples != 117 {
		t.Errorf("unexpected default run %+v", runs[1])
	}
	got, err := store.GetRun(runs[1].ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.MuzzleVelocity != 1350 {
		t.Errorf("GetRun returned %+v", got)
	}
	if _, err := store.GetRun(9999); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if runs[1].Shot != "#7 1/2" || runs[1].Material != "Chilled" || runs[1].Source != "test" {
		t.Errorf("unexpected default run %+v", runs[1])
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s := input.New()
	result, err := s.Simulate()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(storage.NewRun("cli", s, result)); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecentRuns(1); !errors.Is(err, storage.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}

	store, err = storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Source != "cli" {
		t.Errorf("unexpected runs after reopen %+v", runs)
	}
}

func TestOpenRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	if err := os.WriteFile(path, []byte(strings.Repeat("yards\tvelocity\n", 100)), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := storage.Open(path)
	if err == nil {
		store.Close()
		t.Fatal("opened a file that is not a database")
	}
	if store != nil {
		t.Error("store returned with the error")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	store, err = storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if err := store.Ping(); err != nil {
		t.Error(err)
	}
}
