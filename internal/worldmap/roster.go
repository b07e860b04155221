// Package worldmap provides the fixed set of opponents the player can run
// into on the world map.
package worldmap

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sketchblossom/sketch-blossom/internal/encounter"
	"github.com/sketchblossom/sketch-blossom/internal/models"
)

//go:embed roster.yaml
var rosterYAML []byte

// Opponent is one enemy placed on the world map.
type Opponent struct {
	Name       string          `yaml:"name"`
	Category   models.Category `yaml:"category"`
	Element    models.Element  `yaml:"element"`
	Difficulty int             `yaml:"difficulty"`
	Flavor     string          `yaml:"flavor"`
}

// Encounter converts the opponent into an encounter record. The record is
// not yet active; activation happens when the controller confirms the
// preview and writes the encounter store.
func (o Opponent) Encounter() models.EncounterRecord {
	return models.EncounterRecord{
		Category:   o.Category,
		Element:    o.Element,
		Name:       o.Name,
		Difficulty: o.Difficulty,
		Flavor:     o.Flavor,
	}
}

var (
	rosterOnce sync.Once
	roster     []Opponent
	rosterErr  error
)

// Roster returns the world-map opponents in file order. Difficulty values
// are clamped to [1,5] on load.
func Roster() ([]Opponent, error) {
	rosterOnce.Do(func() {
		var file struct {
			Opponents []Opponent `yaml:"opponents"`
		}
		if err := yaml.Unmarshal(rosterYAML, &file); err != nil {
			rosterErr = fmt.Errorf("parse roster: %w", err)
			return
		}
		for i := range file.Opponents {
			file.Opponents[i].Difficulty = encounter.ClampDifficulty(file.Opponents[i].Difficulty)
		}
		roster = file.Opponents
	})

	out := make([]Opponent, len(roster))
	copy(out, roster)
	return out, rosterErr
}
