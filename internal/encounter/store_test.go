package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchblossom/sketch-blossom/internal/models"
)

func TestSetAndCurrent(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Active(), "new store should be inactive")

	s.Set(models.CategoryCoralBloom, models.ElementWater, "Coral Bloom", 4, "Dive in!")

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, models.CategoryCoralBloom, cur.Category)
	assert.Equal(t, models.ElementWater, cur.Element)
	assert.Equal(t, "Coral Bloom", cur.Name)
	assert.Equal(t, 4, cur.Difficulty)
	assert.Equal(t, "Dive in!", cur.Flavor)
	assert.True(t, s.Active())
}

func TestSetClampsDifficulty(t *testing.T) {
	s := NewStore()

	s.Set(models.CategorySunflower, models.ElementFire, "Sunflower", 9, "")
	cur, _ := s.Current()
	assert.Equal(t, 5, cur.Difficulty)

	s.Set(models.CategorySunflower, models.ElementFire, "Sunflower", 0, "")
	cur, _ = s.Current()
	assert.Equal(t, 1, cur.Difficulty)
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Set(models.CategoryCactus, models.ElementGrass, "Cactus", 2, "Ouch")

	s.Clear()
	once, _ := s.Current()

	s.Clear()
	twice, _ := s.Current()

	assert.Equal(t, once, twice, "clearing twice must equal clearing once")
	assert.False(t, s.Active())
	assert.Equal(t, DefaultCategory, once.Category)
	assert.Equal(t, DefaultElement, once.Element)
	assert.Equal(t, DefaultDifficulty, once.Difficulty)
	assert.Empty(t, once.Name)
	assert.Empty(t, once.Flavor)
}

func TestSetOverwritesPriorEncounter(t *testing.T) {
	s := NewStore()
	s.Set(models.CategoryCactus, models.ElementGrass, "Cactus", 2, "Ouch")
	s.Set(models.CategoryWaterLily, models.ElementWater, "Water Lily", 1, "Splash")

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Water Lily", cur.Name, "a new encounter must not merge with a stale one")
	assert.Equal(t, models.ElementWater, cur.Element)
}
