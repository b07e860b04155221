// Package inventory holds the player's owned units for the lifetime of the
// process. The store is constructed once at startup and survives every stage
// transition; durable storage is only touched by Save and Load.
package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sketchblossom/sketch-blossom/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrIO       = errors.New("inventory persistence failed")
)

// Store is the process-wide registry of StatRecords. All methods are safe
// for concurrent use.
type Store struct {
	mu         sync.Mutex
	records    []models.StatRecord
	selectedID string
}

func NewStore() *Store {
	return &Store{}
}

// AddOrUpdate inserts a new record or overwrites an existing one matched by
// ID, keeping insertion order. CurrentHealth is clamped to MaxHealth.
func (s *Store) AddOrUpdate(rec models.StatRecord) {
	if rec.CurrentHealth > rec.MaxHealth {
		rec.CurrentHealth = rec.MaxHealth
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			return
		}
	}
	s.records = append(s.records, rec)
}

// Select marks the record with the given ID as the active unit. Selecting an
// unknown ID fails and leaves the previous selection in place.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.selectedID = id
			return nil
		}
	}
	return fmt.Errorf("select %q: %w", id, ErrNotFound)
}

// Selected returns the currently selected record, if any.
func (s *Store) Selected() (models.StatRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == s.selectedID {
			return s.records[i], true
		}
	}
	return models.StatRecord{}, false
}

// SelectedID returns the ID of the current selection, or "" when none.
func (s *Store) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Get returns a copy of the record with the given ID.
func (s *Store) Get(id string) (models.StatRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], true
		}
	}
	return models.StatRecord{}, false
}

// List returns all records in insertion order.
func (s *Store) List() []models.StatRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.StatRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear removes every record and the selection. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.selectedID = ""
}

// Save persists all records and the selection. A failed write is retried
// once; if the retry also fails the in-memory state stays authoritative and
// an ErrIO is returned for the caller to surface as a warning.
func (s *Store) Save() error {
	s.mu.Lock()
	state := models.InventoryState{
		Records:    make([]models.StatRecord, len(s.records)),
		SelectedID: s.selectedID,
	}
	copy(state.Records, s.records)
	s.mu.Unlock()

	err := state.Save()
	if err != nil {
		err = state.Save()
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Load replaces the store contents with the persisted state. Called once at
// process start; a missing save file leaves the store empty. A persisted
// selection that no longer resolves to a record is dropped.
func (s *Store) Load() error {
	state, err := models.LoadInventoryState()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = state.Records
	s.selectedID = ""
	for i := range s.records {
		if s.records[i].ID == state.SelectedID {
			s.selectedID = state.SelectedID
			break
		}
	}
	return nil
}
