// Package progression sequences the game's stages and decides which
// transitions are valid. The controller is the single writer of the
// encounter store and the only caller of the stat upgrade engine.
package progression

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sketchblossom/sketch-blossom/internal/encounter"
	"github.com/sketchblossom/sketch-blossom/internal/growth"
	"github.com/sketchblossom/sketch-blossom/internal/inventory"
	"github.com/sketchblossom/sketch-blossom/internal/models"
)

const maxEvents = 20

// Options tune the reward flow. Zero values fall back to defaults.
type Options struct {
	MinMultiplier      float64       // default growth.DefaultMinMultiplier
	MaxMultiplier      float64       // default growth.DefaultMaxMultiplier
	MinRequiredStrokes int           // default 3
	AutoReturnDelay    time.Duration // default 3s, Tame reward auto-return
}

// Controller is the progression state machine. All methods are safe for
// concurrent use; gameplay normally drives it from a single tick loop.
type Controller struct {
	mu  sync.Mutex
	inv *inventory.Store
	enc *encounter.Store

	stage Stage
	// gen advances on every stage change. A deferred auto-transition
	// captures the generation it was scheduled under and no-ops when the
	// stage has moved on, so a user action always wins over the timer.
	gen uint64

	pending      *models.EncounterRecord
	battleUnitID string
	battleWon    bool

	opts   Options
	events []string

	schedule func(d time.Duration, fn func())
}

// New builds a controller over the two stores. Both stores are mandatory;
// construction fails fast if either is missing.
func New(inv *inventory.Store, enc *encounter.Store, opts Options) (*Controller, error) {
	if inv == nil {
		return nil, errors.New("progression: inventory store is required")
	}
	if enc == nil {
		return nil, errors.New("progression: encounter store is required")
	}
	if opts.MinMultiplier == 0 {
		opts.MinMultiplier = growth.DefaultMinMultiplier
	}
	if opts.MaxMultiplier == 0 {
		opts.MaxMultiplier = growth.DefaultMaxMultiplier
	}
	if opts.MinMultiplier > opts.MaxMultiplier {
		return nil, fmt.Errorf("progression: multiplier bounds inverted: [%v, %v]", opts.MinMultiplier, opts.MaxMultiplier)
	}
	if opts.MinRequiredStrokes == 0 {
		opts.MinRequiredStrokes = 3
	}
	if opts.AutoReturnDelay == 0 {
		opts.AutoReturnDelay = 3 * time.Second
	}

	return &Controller{
		inv:   inv,
		enc:   enc,
		stage: StageWorldMap,
		opts:  opts,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}, nil
}

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// PreviewOpponent shows an opponent's battle preview. Nothing is written to
// the encounter store until the preview is confirmed.
func (c *Controller) PreviewOpponent(enc models.EncounterRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StageWorldMap {
		return c.reject(fmt.Errorf("%w: preview from %s", ErrInvalidState, c.stage))
	}
	enc.Difficulty = encounter.ClampDifficulty(enc.Difficulty)
	enc.Active = false
	c.pending = &enc
	c.setStage(StagePreviewingEncounter)
	return nil
}

// CancelPreview drops the previewed opponent and returns to the world map.
// The encounter store is left untouched.
func (c *Controller) CancelPreview() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StagePreviewingEncounter {
		return c.reject(fmt.Errorf("%w: cancel preview from %s", ErrInvalidState, c.stage))
	}
	c.pending = nil
	c.setStage(StageWorldMap)
	return nil
}

// ConfirmEncounter commits the previewed opponent to the encounter store and
// moves on to unit selection.
func (c *Controller) ConfirmEncounter() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StagePreviewingEncounter || c.pending == nil {
		return c.reject(fmt.Errorf("%w: confirm encounter from %s", ErrInvalidState, c.stage))
	}
	p := c.pending
	c.enc.Set(p.Category, p.Element, p.Name, p.Difficulty, p.Flavor)
	c.pending = nil
	c.setStage(StageSelectingUnit)
	return nil
}

// EnterBattle starts the battle with the selected unit. Without a selection
// the controller stays in SelectingUnit.
func (c *Controller) EnterBattle() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StageSelectingUnit {
		return c.reject(fmt.Errorf("%w: enter battle from %s", ErrInvalidState, c.stage))
	}
	id := c.inv.SelectedID()
	if id == "" {
		return c.reject(fmt.Errorf("%w: no unit selected for battle", ErrNotFound))
	}
	c.battleUnitID = id
	c.setStage(StageInBattle)
	return nil
}

// ResolveBattle records the externally decided battle outcome. A win is
// credited to the unit that fought.
func (c *Controller) ResolveBattle(won bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StageInBattle {
		return c.reject(fmt.Errorf("%w: resolve battle from %s", ErrInvalidState, c.stage))
	}
	c.battleWon = won
	if won {
		if rec, ok := c.inv.Get(c.battleUnitID); ok {
			growth.RecordVictory(&rec)
			c.inv.AddOrUpdate(rec)
		}
	}
	c.setStage(StagePostBattle)
	return nil
}

// ChooseWildGrowth enters the Wild Growth reward. The unit that actually
// fought is re-selected when its identifier is still known; otherwise the
// current selection stands and a warning is logged.
func (c *Controller) ChooseWildGrowth() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StagePostBattle {
		return c.reject(fmt.Errorf("%w: wild growth from %s", ErrInvalidState, c.stage))
	}
	if !c.battleWon {
		return c.reject(fmt.Errorf("%w: no victory to reward", ErrInvalidState))
	}

	if c.battleUnitID != "" {
		if err := c.inv.Select(c.battleUnitID); err != nil {
			c.logf("battle unit %s no longer in inventory; keeping current selection", c.battleUnitID)
		}
	} else {
		c.logf("battle unit unknown; keeping current selection")
	}
	if c.inv.SelectedID() == "" {
		return c.reject(fmt.Errorf("%w: no unit available to grow", ErrNotFound))
	}

	c.setStage(StageWildGrowthReward)
	return nil
}

// ChooseTame consumes the beaten opponent and enters the Tame reward. The
// reward screen returns to the world map on confirmation or automatically
// after the configured delay, whichever comes first.
func (c *Controller) ChooseTame() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StagePostBattle {
		return c.reject(fmt.Errorf("%w: tame from %s", ErrInvalidState, c.stage))
	}
	if !c.battleWon {
		return c.reject(fmt.Errorf("%w: no victory to reward", ErrInvalidState))
	}

	// Consuming the opponent: it joins the inventory as a fresh unit.
	if beaten, active := c.enc.Current(); active {
		hp, atk, def := models.BaseStats(beaten.Category)
		rec := models.NewStatRecord(beaten.Name, beaten.Category, beaten.Element, hp, atk, def)
		c.inv.AddOrUpdate(rec)
		if err := c.inv.Save(); err != nil {
			c.logf("save failed after tame: %v", err)
		}
	}

	c.enc.Clear()
	c.setStage(StageTameReward)

	gen := c.gen
	c.schedule(c.opts.AutoReturnDelay, func() { c.autoReturn(gen) })
	return nil
}

// ConfirmWildGrowth scores the drawing, applies the growth to the selected
// unit, persists the inventory and returns to the world map.
func (c *Controller) ConfirmWildGrowth(stats models.DrawingStats) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StageWildGrowthReward {
		return c.reject(fmt.Errorf("%w: confirm growth from %s", ErrInvalidState, c.stage))
	}
	if stats.StrokeCount < c.opts.MinRequiredStrokes {
		return c.reject(fmt.Errorf("%w: need at least %d strokes, have %d",
			ErrInvalidState, c.opts.MinRequiredStrokes, stats.StrokeCount))
	}

	rec, ok := c.inv.Selected()
	if !ok {
		return c.reject(fmt.Errorf("%w: no unit selected to grow", ErrNotFound))
	}

	multiplier := growth.Evaluate(stats, c.opts.MinMultiplier, c.opts.MaxMultiplier)
	if err := growth.ApplyGrowth(&rec, multiplier, c.opts.MinMultiplier, c.opts.MaxMultiplier); err != nil {
		return c.reject(err)
	}
	c.inv.AddOrUpdate(rec)

	if err := c.inv.Save(); err != nil {
		// In-memory state stays authoritative; gameplay continues.
		c.logf("save failed after growth: %v", err)
	}

	c.enc.Clear()
	c.finishCycle()
	return nil
}

// ConfirmTame returns from the Tame reward to the world map, cancelling the
// pending auto-return.
func (c *Controller) ConfirmTame() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StageTameReward {
		return c.reject(fmt.Errorf("%w: confirm tame from %s", ErrInvalidState, c.stage))
	}
	c.enc.Clear()
	c.finishCycle()
	return nil
}

// Finish skips the reward stages, for example after a lost battle, and
// returns to the world map.
func (c *Controller) Finish() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != StagePostBattle {
		return c.reject(fmt.Errorf("%w: finish from %s", ErrInvalidState, c.stage))
	}
	c.enc.Clear()
	c.finishCycle()
	return nil
}

// Request asks for a transition to the target stage, for edges that carry no
// payload. Transitions needing data (an opponent to preview, a battle
// outcome) have dedicated methods.
func (c *Controller) Request(target Stage) error {
	switch target {
	case StageSelectingUnit:
		return c.ConfirmEncounter()
	case StageInBattle:
		return c.EnterBattle()
	case StageWildGrowthReward:
		return c.ChooseWildGrowth()
	case StageTameReward:
		return c.ChooseTame()
	case StageWorldMap:
		c.mu.Lock()
		current := c.stage
		c.mu.Unlock()
		switch current {
		case StagePreviewingEncounter:
			return c.CancelPreview()
		case StagePostBattle:
			return c.Finish()
		case StageTameReward:
			return c.ConfirmTame()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reject(fmt.Errorf("%w: no %s -> %s edge", ErrInvalidState, c.stage, target))
}

// autoReturn is the deferred Tame auto-transition. It observes the stage
// generation first: if anything moved the controller since the timer was
// armed, the transition is stale and nothing fires.
func (c *Controller) autoReturn(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen || c.stage != StageTameReward {
		return
	}
	c.enc.Clear()
	c.finishCycle()
}

// finishCycle returns to the world map and forgets battle context.
// Callers hold the lock.
func (c *Controller) finishCycle() {
	c.battleUnitID = ""
	c.battleWon = false
	c.setStage(StageWorldMap)
}

func (c *Controller) setStage(s Stage) {
	c.stage = s
	c.gen++
}

// reject logs the reason and hands it back. Callers hold the lock.
func (c *Controller) reject(err error) error {
	c.events = append(c.events, err.Error())
	if len(c.events) > maxEvents {
		c.events = c.events[len(c.events)-maxEvents:]
	}
	return err
}

func (c *Controller) logf(format string, args ...any) {
	c.events = append(c.events, fmt.Sprintf(format, args...))
	if len(c.events) > maxEvents {
		c.events = c.events[len(c.events)-maxEvents:]
	}
}

// Events returns the recent warnings and rejection reasons, oldest first.
func (c *Controller) Events() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	copy(out, c.events)
	return out
}
