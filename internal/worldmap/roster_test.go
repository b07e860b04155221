package worldmap

import (
	"testing"

	"github.com/sketchblossom/sketch-blossom/internal/models"
)

func TestRoster(t *testing.T) {
	opponents, err := Roster()
	if err != nil {
		t.Fatalf("Roster failed: %v", err)
	}
	if len(opponents) == 0 {
		t.Fatal("Expected at least one opponent")
	}

	seen := map[string]bool{}
	for _, o := range opponents {
		if o.Name == "" {
			t.Error("Opponent with empty name")
		}
		if seen[o.Name] {
			t.Errorf("Duplicate opponent name %q", o.Name)
		}
		seen[o.Name] = true

		if o.Difficulty < 1 || o.Difficulty > 5 {
			t.Errorf("%s: difficulty %d outside [1,5]", o.Name, o.Difficulty)
		}
		switch o.Element {
		case models.ElementFire, models.ElementWater, models.ElementGrass:
		default:
			t.Errorf("%s: unknown element %q", o.Name, o.Element)
		}
	}
}

func TestOpponentEncounter(t *testing.T) {
	o := Opponent{
		Name:       "Coral Bloom",
		Category:   models.CategoryCoralBloom,
		Element:    models.ElementWater,
		Difficulty: 4,
		Flavor:     "Deep water awaits.",
	}

	enc := o.Encounter()
	if enc.Name != o.Name || enc.Category != o.Category || enc.Element != o.Element {
		t.Errorf("Encounter lost opponent identity: %+v", enc)
	}
	if enc.Difficulty != 4 || enc.Flavor != o.Flavor {
		t.Errorf("Encounter lost difficulty or flavor: %+v", enc)
	}
	if enc.Active {
		t.Error("Encounter from an opponent must not be active until confirmed")
	}
}
