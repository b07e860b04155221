package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sketchblossom/sketch-blossom/internal/config"
	"github.com/sketchblossom/sketch-blossom/internal/encounter"
	"github.com/sketchblossom/sketch-blossom/internal/flavor"
	"github.com/sketchblossom/sketch-blossom/internal/inventory"
	"github.com/sketchblossom/sketch-blossom/internal/models"
	"github.com/sketchblossom/sketch-blossom/internal/progression"
	"github.com/sketchblossom/sketch-blossom/internal/tui"
	"github.com/sketchblossom/sketch-blossom/internal/worldmap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	models.SaveDir = cfg.SaveDir

	inv := inventory.NewStore()
	if err := inv.Load(); err != nil {
		fmt.Printf("Warning: could not load saved inventory: %v\n", err)
	}
	seedStarters(inv)

	enc := encounter.NewStore()

	ctrl, err := progression.New(inv, enc, progression.Options{
		MinMultiplier: cfg.MinMultiplier,
		MaxMultiplier: cfg.MaxMultiplier,
	})
	if err != nil {
		fmt.Printf("Error creating controller: %v\n", err)
		os.Exit(1)
	}

	roster, err := worldmap.Roster()
	if err != nil {
		fmt.Printf("Error loading world map roster: %v\n", err)
		os.Exit(1)
	}

	var gen flavor.Generator = flavor.Static{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := flavor.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Warning: flavor generation disabled: %v\n", err)
		} else {
			defer gemini.Close()
			gen = gemini
		}
	}

	if err := tui.Run(ctrl, inv, gen, roster); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// seedStarters gives a brand-new save something to fight with.
func seedStarters(inv *inventory.Store) {
	if inv.Len() > 0 {
		return
	}
	starters := []struct {
		name     string
		category models.Category
		element  models.Element
	}{
		{"Starter Sprout", models.CategoryGrassSprout, models.ElementGrass},
		{"Spiky Cactus", models.CategoryCactus, models.ElementGrass},
		{"Water Lily", models.CategoryWaterLily, models.ElementWater},
	}
	for _, s := range starters {
		hp, atk, def := models.BaseStats(s.category)
		inv.AddOrUpdate(models.NewStatRecord(s.name, s.category, s.element, hp, atk, def))
	}
}
