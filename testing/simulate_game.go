// Command simulate_game runs a scripted playthrough of the progression loop
// without the TUI: every roster opponent is previewed, fought and rewarded,
// alternating Wild Growth and Tame. Useful for eyeballing the flow and the
// numbers the evaluator produces.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sketchblossom/sketch-blossom/internal/config"
	"github.com/sketchblossom/sketch-blossom/internal/encounter"
	"github.com/sketchblossom/sketch-blossom/internal/flavor"
	"github.com/sketchblossom/sketch-blossom/internal/growth"
	"github.com/sketchblossom/sketch-blossom/internal/inventory"
	"github.com/sketchblossom/sketch-blossom/internal/models"
	"github.com/sketchblossom/sketch-blossom/internal/progression"
	"github.com/sketchblossom/sketch-blossom/internal/worldmap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	models.SaveDir = cfg.SaveDir

	inv := inventory.NewStore()
	if err := inv.Load(); err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}
	if inv.Len() == 0 {
		inv.AddOrUpdate(models.NewStatRecord("Starter Sprout", models.CategoryGrassSprout, models.ElementGrass, 30, 10, 16))
	}

	enc := encounter.NewStore()
	ctrl, err := progression.New(inv, enc, progression.Options{})
	if err != nil {
		log.Fatalf("Failed to create controller: %v", err)
	}

	roster, err := worldmap.Roster()
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	gen := flavor.Static{}

	for i, opponent := range roster {
		fmt.Printf("--- Cycle %d: %s ---\n", i+1, opponent.Name)

		record := opponent.Encounter()
		text, _ := gen.FlavorText(ctx, record)
		record.Flavor = text
		fmt.Printf("Preview: %s %s - %s\n", record.Name, record.Stars(), record.Flavor)

		must(ctrl.PreviewOpponent(record))
		must(ctrl.ConfirmEncounter())

		first := inv.List()[0]
		must(inv.Select(first.ID))
		must(ctrl.EnterBattle())
		must(ctrl.ResolveBattle(true))

		if i%2 == 0 {
			// A decent drawing: seven strokes covering half the canvas.
			stats := models.DrawingStats{
				StrokeCount:     7,
				TotalLength:     400,
				BoundingBoxArea: 240000,
				CanvasArea:      480000,
			}
			mult := growth.Evaluate(stats, growth.DefaultMinMultiplier, growth.DefaultMaxMultiplier)
			fmt.Printf("Wild Growth at x%.2f\n", mult)

			must(ctrl.ChooseWildGrowth())
			must(ctrl.ConfirmWildGrowth(stats))
		} else {
			fmt.Println("Taming the opponent")
			must(ctrl.ChooseTame())
			must(ctrl.ConfirmTame())
		}

		sel, _ := inv.Selected()
		fmt.Printf("Selected unit now: Lv%d %s (HP %d, ATK %d, DEF %d)\n",
			sel.Level, sel.Name, sel.MaxHealth, sel.Attack, sel.Defense)
		fmt.Printf("Inventory size: %d, stage: %s\n\n", inv.Len(), ctrl.Stage())
	}

	for _, e := range ctrl.Events() {
		fmt.Printf("event: %s\n", e)
	}
}

func must(err error) {
	if err != nil {
		log.Fatalf("Simulation step failed: %v", err)
	}
}
