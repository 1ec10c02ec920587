package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Local persistence keys. Values are JSON or plain strings; readers
// treat anything malformed as absent.
const (
	KeyTopics         = "topics"
	KeyLastSolvedDate = "lastSolvedDate"
	KeyStreak         = "streak"
)

// LocalStore is the device-scoped key/value store. Reads tolerate
// missing keys; writes replace the whole value.
type LocalStore struct {
	DB *sqlx.DB
}

func NewLocalStore(db *sqlx.DB) *LocalStore {
	return &LocalStore{DB: db}
}

// Get returns the stored value and whether the key was present.
func (s *LocalStore) Get(key string) (string, bool, error) {
	var value string
	err := s.DB.Get(&value, "SELECT value FROM device_state WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *LocalStore) Set(key, value string) error {
	_, err := s.DB.Exec(`
		INSERT INTO device_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
