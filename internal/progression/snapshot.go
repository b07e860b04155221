package progression

import (
	"github.com/sketchblossom/sketch-blossom/internal/growth"
	"github.com/sketchblossom/sketch-blossom/internal/models"
)

// Snapshot is a read-only view of the controller for the presentation
// layer. It carries no references into controller state.
type Snapshot struct {
	Stage     Stage
	Selected  *models.StatRecord
	Pending   *models.EncounterRecord // previewed, not yet confirmed
	Encounter models.EncounterRecord
	Active    bool
	BattleWon bool
	Events    []string
}

// Snapshot captures the current presentation state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Stage:     c.stage,
		BattleWon: c.battleWon,
		Events:    make([]string, len(c.events)),
	}
	copy(snap.Events, c.events)

	if sel, ok := c.inv.Selected(); ok {
		snap.Selected = &sel
	}
	if c.pending != nil {
		p := *c.pending
		snap.Pending = &p
	}
	snap.Encounter, snap.Active = c.enc.Current()
	return snap
}

// GrowthPreview computes the live Wild Growth preview for the given drawing
// telemetry: the multiplier the drawing currently earns, the selected unit
// as it stands and as it would look after confirmation. It mutates nothing
// and reports ok=false outside the WildGrowthReward stage or without a
// selection.
func (c *Controller) GrowthPreview(stats models.DrawingStats) (multiplier float64, current, grown models.StatRecord, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StageWildGrowthReward {
		return 0, models.StatRecord{}, models.StatRecord{}, false
	}
	rec, found := c.inv.Selected()
	if !found {
		return 0, models.StatRecord{}, models.StatRecord{}, false
	}

	multiplier = growth.Evaluate(stats, c.opts.MinMultiplier, c.opts.MaxMultiplier)
	grown = rec
	if err := growth.ApplyGrowth(&grown, multiplier, c.opts.MinMultiplier, c.opts.MaxMultiplier); err != nil {
		return 0, models.StatRecord{}, models.StatRecord{}, false
	}
	return multiplier, rec, grown, true
}

// ConfirmEnabled reports whether the Wild Growth drawing is complete enough
// for confirmation.
func (c *Controller) ConfirmEnabled(stats models.DrawingStats) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage == StageWildGrowthReward && stats.StrokeCount >= c.opts.MinRequiredStrokes
}
