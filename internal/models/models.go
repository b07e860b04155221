package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Element is the elemental affinity of a unit or opponent.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementWater Element = "Water"
	ElementGrass Element = "Grass"
)

// Category is the kind of plant a unit or opponent is.
type Category string

const (
	CategorySunflower    Category = "Sunflower"
	CategoryFireRose     Category = "FireRose"
	CategoryFlameTulip   Category = "FlameTulip"
	CategoryCactus       Category = "Cactus"
	CategoryVineFlower   Category = "VineFlower"
	CategoryGrassSprout  Category = "GrassSprout"
	CategoryWaterLily    Category = "WaterLily"
	CategoryCoralBloom   Category = "CoralBloom"
	CategoryBubbleFlower Category = "BubbleFlower"
)

// BaseStats returns the starting maxHealth, attack and defense for a plant
// kind. Fire plants hit hard, water plants endure, grass plants balance.
func BaseStats(c Category) (maxHealth, attack, defense int) {
	switch c {
	case CategorySunflower:
		return 30, 18, 8
	case CategoryFireRose:
		return 35, 16, 10
	case CategoryFlameTulip:
		return 28, 20, 6
	case CategoryCactus:
		return 32, 12, 14
	case CategoryVineFlower:
		return 35, 14, 12
	case CategoryGrassSprout:
		return 30, 10, 16
	case CategoryWaterLily:
		return 40, 10, 14
	case CategoryCoralBloom:
		return 38, 12, 12
	case CategoryBubbleFlower:
		return 36, 8, 16
	default:
		return 30, 10, 10
	}
}

// StatRecord is one player-owned unit. The ID is assigned at creation and
// never changes; everything else grows through Wild Growth or battle results.
type StatRecord struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Category        Category `yaml:"category"`
	Element         Element  `yaml:"element"`
	Level           int      `yaml:"level"`
	MaxHealth       int      `yaml:"max_health"`
	CurrentHealth   int      `yaml:"current_health"`
	Attack          int      `yaml:"attack"`
	Defense         int      `yaml:"defense"`
	WildGrowthCount int      `yaml:"wild_growth_count"`
	BattlesWon      int      `yaml:"battles_won"`
}

// NewStatRecord creates a freshly acquired level-1 unit at full health.
func NewStatRecord(name string, category Category, element Element, maxHealth, attack, defense int) StatRecord {
	return StatRecord{
		ID:            uuid.NewString(),
		Name:          name,
		Category:      category,
		Element:       element,
		Level:         1,
		MaxHealth:     maxHealth,
		CurrentHealth: maxHealth,
		Attack:        attack,
		Defense:       defense,
	}
}

// StatsSummary returns a multi-line description suitable for display.
func (r StatRecord) StatsSummary() string {
	return fmt.Sprintf("Level %d %s\nHP: %d/%d\nATK: %d | DEF: %d\nElement: %s\nBattles Won: %d",
		r.Level, r.Name, r.CurrentHealth, r.MaxHealth, r.Attack, r.Defense, r.Element, r.BattlesWon)
}

// InventoryState is the persisted form of the player's collection:
// all owned units in acquisition order plus the current selection.
type InventoryState struct {
	Records    []StatRecord `yaml:"records"`
	SelectedID string       `yaml:"selected_id,omitempty"`
}

// EncounterRecord describes one pending or active battle opponent.
type EncounterRecord struct {
	Category   Category `yaml:"category"`
	Element    Element  `yaml:"element"`
	Name       string   `yaml:"name"`
	Difficulty int      `yaml:"difficulty"`
	Flavor     string   `yaml:"flavor"`
	Active     bool     `yaml:"active"`
}

// Stars renders difficulty as filled and empty stars, e.g. "★★★☆☆".
func (e EncounterRecord) Stars() string {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < e.Difficulty {
			b.WriteRune('★')
		} else {
			b.WriteRune('☆')
		}
	}
	return b.String()
}

// DrawingStats is an ephemeral measurement of one drawing session,
// produced on demand by the drawing surface. Never persisted.
type DrawingStats struct {
	StrokeCount     int
	TotalLength     float64
	BoundingBoxArea float64
	CanvasArea      float64
}
