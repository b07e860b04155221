package models

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInventoryStateYAML(t *testing.T) {
	state := &InventoryState{
		Records: []StatRecord{
			{
				ID:            "unit-1",
				Name:          "Water Lily",
				Category:      CategoryWaterLily,
				Element:       ElementWater,
				Level:         2,
				MaxHealth:     40,
				CurrentHealth: 35,
				Attack:        10,
				Defense:       14,
				BattlesWon:    1,
			},
		},
		SelectedID: "unit-1",
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		t.Fatalf("Failed to marshal state: %v", err)
	}

	var state2 InventoryState
	err = yaml.Unmarshal(data, &state2)
	if err != nil {
		t.Fatalf("Failed to unmarshal state: %v", err)
	}

	if len(state2.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(state2.Records))
	}
	if state2.Records[0] != state.Records[0] {
		t.Errorf("Expected record %+v, got %+v", state.Records[0], state2.Records[0])
	}
	if state2.SelectedID != "unit-1" {
		t.Errorf("Expected selected id unit-1, got %s", state2.SelectedID)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	oldDir := SaveDir
	SaveDir = t.TempDir()
	defer func() { SaveDir = oldDir }()

	rec := NewStatRecord("Sunflower", CategorySunflower, ElementFire, 30, 18, 8)
	state := &InventoryState{Records: []StatRecord{rec}, SelectedID: rec.ID}

	if err := state.Save(); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	loaded, err := LoadInventoryState()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if len(loaded.Records) != 1 || loaded.Records[0] != rec {
		t.Errorf("Loaded records do not match saved: %+v", loaded.Records)
	}
	if loaded.SelectedID != rec.ID {
		t.Errorf("Expected selected id %s, got %s", rec.ID, loaded.SelectedID)
	}
}

func TestLoadMissingStateIsEmpty(t *testing.T) {
	oldDir := SaveDir
	SaveDir = t.TempDir()
	defer func() { SaveDir = oldDir }()

	state, err := LoadInventoryState()
	if err != nil {
		t.Fatalf("Expected no error for missing save, got %v", err)
	}
	if len(state.Records) != 0 || state.SelectedID != "" {
		t.Errorf("Expected empty state, got %+v", state)
	}
}

func TestNewStatRecord(t *testing.T) {
	rec := NewStatRecord("Cactus", CategoryCactus, ElementGrass, 32, 12, 14)

	if rec.ID == "" {
		t.Error("Expected a generated id")
	}
	if rec.Level != 1 {
		t.Errorf("Expected level 1, got %d", rec.Level)
	}
	if rec.CurrentHealth != rec.MaxHealth {
		t.Errorf("Expected full health, got %d/%d", rec.CurrentHealth, rec.MaxHealth)
	}

	other := NewStatRecord("Cactus", CategoryCactus, ElementGrass, 32, 12, 14)
	if other.ID == rec.ID {
		t.Error("Expected unique ids for separate records")
	}
}

func TestBaseStatsCoversAllCategories(t *testing.T) {
	categories := []Category{
		CategorySunflower, CategoryFireRose, CategoryFlameTulip,
		CategoryCactus, CategoryVineFlower, CategoryGrassSprout,
		CategoryWaterLily, CategoryCoralBloom, CategoryBubbleFlower,
	}
	for _, c := range categories {
		hp, atk, def := BaseStats(c)
		if hp <= 0 || atk <= 0 || def <= 0 {
			t.Errorf("BaseStats(%s) = %d/%d/%d; want all positive", c, hp, atk, def)
		}
	}
}

func TestEncounterStars(t *testing.T) {
	enc := EncounterRecord{Difficulty: 3}
	if got := enc.Stars(); got != "★★★☆☆" {
		t.Errorf("Expected ★★★☆☆, got %s", got)
	}

	enc.Difficulty = 5
	if got := enc.Stars(); got != "★★★★★" {
		t.Errorf("Expected ★★★★★, got %s", got)
	}
}
