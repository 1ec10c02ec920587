package repository

import (
	"path/filepath"
	"testing"

	"github.com/AdityaANS/dsa-progress-tracker/pkg/database"
	"github.com/jmoiron/sqlx"
)

func setupLocalStore(t *testing.T) *LocalStore {
	t.Helper()

	db, err := database.OpenLocal(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewLocalStore(db)
}

func TestLocalStoreMissingKey(t *testing.T) {
	store := setupLocalStore(t)

	value, ok, err := store.Get(KeyTopics)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("missing key should read as absent, got (%q, %v)", value, ok)
	}
}

func TestLocalStoreSetGet(t *testing.T) {
	store := setupLocalStore(t)

	if err := store.Set(KeyStreak, "3"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := store.Get(KeyStreak)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || value != "3" {
		t.Errorf("expected (\"3\", true), got (%q, %v)", value, ok)
	}
}

func TestLocalStoreOverwrite(t *testing.T) {
	store := setupLocalStore(t)

	if err := store.Set(KeyLastSolvedDate, "2026-08-27"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(KeyLastSolvedDate, "2026-08-28"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	value, ok, _ := store.Get(KeyLastSolvedDate)
	if !ok || value != "2026-08-28" {
		t.Errorf("expected latest value, got (%q, %v)", value, ok)
	}
}

func TestLocalStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.db")

	db, err := database.OpenLocal(path)
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	store := NewLocalStore(db)
	if err := store.Set(KeyTopics, `[{"name":"Arrays","target":25,"solved":3}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	var reopened *sqlx.DB
	reopened, err = database.OpenLocal(path)
	if err != nil {
		t.Fatalf("failed to reopen local store: %v", err)
	}
	defer reopened.Close()

	value, ok, err := NewLocalStore(reopened).Get(KeyTopics)
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if !ok || value != `[{"name":"Arrays","target":25,"solved":3}]` {
		t.Errorf("state did not survive reopen, got (%q, %v)", value, ok)
	}
}
