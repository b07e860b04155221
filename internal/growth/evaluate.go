// Package growth turns drawing effort into stat growth: a pure quality
// evaluator and the engine that applies the resulting multiplier to a unit.
package growth

import (
	"github.com/sketchblossom/sketch-blossom/internal/models"
)

// Multiplier bounds applied to a unit's stats during Wild Growth.
const (
	DefaultMinMultiplier = 1.3
	DefaultMaxMultiplier = 1.8
)

// Score ramps for the quality heuristic. One stroke scores nothing, fifteen
// score full marks; likewise for total path length in canvas units.
const (
	strokeFloor = 1
	strokeCeil  = 15
	lengthFloor = 50
	lengthCeil  = 600

	coverageBoost = 1.5
)

// Evaluate maps drawing telemetry to a multiplier in [minMult, maxMult].
// An empty canvas earns exactly minMult. The result is monotonically
// non-decreasing in stroke count, total length and bounding-box area, so it
// is safe to call every tick for a live preview.
func Evaluate(stats models.DrawingStats, minMult, maxMult float64) float64 {
	if stats.StrokeCount == 0 {
		return minMult
	}

	strokeScore := clamp01(inverseLerp(strokeFloor, strokeCeil, float64(stats.StrokeCount)))
	lengthScore := clamp01(inverseLerp(lengthFloor, lengthCeil, stats.TotalLength))

	coverageScore := 0.0
	if stats.CanvasArea > 0 {
		coverageScore = clamp01(stats.BoundingBoxArea / stats.CanvasArea * coverageBoost)
	}

	quality := clamp01((strokeScore + lengthScore + coverageScore) / 3)
	return lerp(minMult, maxMult, quality)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func inverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
