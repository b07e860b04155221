package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/sketchblossom/sketch-blossom/internal/models"
)

var ErrInvalidInput = errors.New("invalid growth input")

// ApplyGrowth raises the record's combat stats by the given multiplier,
// heals it to the new maximum and advances its level and growth counter.
// Rounding is half-away-from-zero, so round(22.5) = 23.
//
// The multiplier must be finite and inside [minMult, maxMult] and the
// record's stats non-negative; otherwise an ErrInvalidInput is returned and
// the record is left untouched.
func ApplyGrowth(rec *models.StatRecord, multiplier, minMult, maxMult float64) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidInput)
	}
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return fmt.Errorf("%w: multiplier %v is not finite", ErrInvalidInput, multiplier)
	}
	if multiplier < minMult || multiplier > maxMult {
		return fmt.Errorf("%w: multiplier %.3f outside [%.2f, %.2f]", ErrInvalidInput, multiplier, minMult, maxMult)
	}
	if rec.MaxHealth < 0 || rec.Attack < 0 || rec.Defense < 0 {
		return fmt.Errorf("%w: negative stat on %q", ErrInvalidInput, rec.ID)
	}

	rec.MaxHealth = roundHalfAway(float64(rec.MaxHealth) * multiplier)
	rec.Attack = roundHalfAway(float64(rec.Attack) * multiplier)
	rec.Defense = roundHalfAway(float64(rec.Defense) * multiplier)
	rec.CurrentHealth = rec.MaxHealth
	rec.Level++
	rec.WildGrowthCount++
	return nil
}

// RecordVictory credits the unit with a battle win.
func RecordVictory(rec *models.StatRecord) {
	rec.BattlesWon++
}

// HealToFull restores the unit to its maximum health.
func HealToFull(rec *models.StatRecord) {
	rec.CurrentHealth = rec.MaxHealth
}

func roundHalfAway(v float64) int {
	if v < 0 {
		return -int(math.Floor(-v + 0.5))
	}
	return int(math.Floor(v + 0.5))
}
