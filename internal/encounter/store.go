// Package encounter carries opponent data between the world map and the
// battle flow. Only the progression controller writes here; everything else
// treats the store as read-only.
package encounter

import (
	"sync"

	"github.com/sketchblossom/sketch-blossom/internal/models"
)

// Defaults the store resets to when no battle is pending.
const (
	DefaultCategory   = models.CategorySunflower
	DefaultElement    = models.ElementFire
	DefaultDifficulty = 1
)

// Store holds the currently active opponent, valid only while a battle
// sequence is in progress.
type Store struct {
	mu      sync.Mutex
	current models.EncounterRecord
}

func NewStore() *Store {
	s := &Store{}
	s.current = defaultRecord()
	return s
}

// Set overwrites the encounter and marks it active. Difficulty is clamped
// to [1,5].
func (s *Store) Set(category models.Category, element models.Element, name string, difficulty int, flavor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = models.EncounterRecord{
		Category:   category,
		Element:    element,
		Name:       name,
		Difficulty: ClampDifficulty(difficulty),
		Flavor:     flavor,
		Active:     true,
	}
}

// Clear resets the encounter to its inactive defaults. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = defaultRecord()
}

// Active reports whether a battle sequence is in progress.
func (s *Store) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Active
}

// Current returns the encounter record and whether it is active.
func (s *Store) Current() (models.EncounterRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current.Active
}

// ClampDifficulty forces difficulty into the [1,5] range.
func ClampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}

func defaultRecord() models.EncounterRecord {
	return models.EncounterRecord{
		Category:   DefaultCategory,
		Element:    DefaultElement,
		Difficulty: DefaultDifficulty,
	}
}
