package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchblossom/sketch-blossom/internal/models"
)

func testRecord(name string) models.StatRecord {
	return models.NewStatRecord(name, models.CategorySunflower, models.ElementFire, 30, 18, 8)
}

func TestAddOrUpdate(t *testing.T) {
	s := NewStore()

	a := testRecord("Sunflower")
	b := testRecord("Cactus")
	s.AddOrUpdate(a)
	s.AddOrUpdate(b)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID, "insertion order should be preserved")
	assert.Equal(t, b.ID, list[1].ID)

	// Overwriting by ID keeps the position.
	a.Attack = 25
	s.AddOrUpdate(a)
	list = s.List()
	require.Len(t, list, 2)
	assert.Equal(t, 25, list[0].Attack)
}

func TestAddOrUpdateClampsHealth(t *testing.T) {
	s := NewStore()

	rec := testRecord("Sunflower")
	rec.CurrentHealth = rec.MaxHealth + 10
	s.AddOrUpdate(rec)

	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, got.MaxHealth, got.CurrentHealth)
}

func TestSelectUnknownIDLeavesSelection(t *testing.T) {
	s := NewStore()

	rec := testRecord("Sunflower")
	s.AddOrUpdate(rec)
	require.NoError(t, s.Select(rec.ID))

	err := s.Select("no-such-id")
	require.ErrorIs(t, err, ErrNotFound)

	got, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, rec.ID, got.ID, "failed select must not change the selection")
}

func TestSelectedNoneWithoutSelection(t *testing.T) {
	s := NewStore()
	s.AddOrUpdate(testRecord("Sunflower"))

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.SelectedID())
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore()
	rec := testRecord("Sunflower")
	s.AddOrUpdate(rec)
	require.NoError(t, s.Select(rec.ID))

	s.Clear()
	s.Clear()

	assert.Zero(t, s.Len())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestSaveLoad(t *testing.T) {
	oldDir := models.SaveDir
	models.SaveDir = t.TempDir()
	defer func() { models.SaveDir = oldDir }()

	s := NewStore()
	a := testRecord("Sunflower")
	b := testRecord("Water Lily")
	s.AddOrUpdate(a)
	s.AddOrUpdate(b)
	require.NoError(t, s.Select(b.ID))
	require.NoError(t, s.Save())

	loaded := NewStore()
	require.NoError(t, loaded.Load())
	require.Equal(t, 2, loaded.Len())
	assert.Equal(t, []models.StatRecord{a, b}, loaded.List())

	sel, ok := loaded.Selected()
	require.True(t, ok)
	assert.Equal(t, b.ID, sel.ID)
}

func TestLoadDropsStaleSelection(t *testing.T) {
	oldDir := models.SaveDir
	models.SaveDir = t.TempDir()
	defer func() { models.SaveDir = oldDir }()

	state := &models.InventoryState{
		Records:    []models.StatRecord{testRecord("Sunflower")},
		SelectedID: "gone",
	}
	require.NoError(t, state.Save())

	s := NewStore()
	require.NoError(t, s.Load())
	_, ok := s.Selected()
	assert.False(t, ok, "selection pointing at a missing record should be dropped")
}

func TestSaveFailureReturnsErrIO(t *testing.T) {
	oldDir := models.SaveDir
	defer func() { models.SaveDir = oldDir }()

	// A regular file where the save directory should be makes the write
	// fail on the first attempt and again on the retry.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	models.SaveDir = blocker

	s := NewStore()
	rec := testRecord("Sunflower")
	s.AddOrUpdate(rec)

	err := s.Save()
	require.ErrorIs(t, err, ErrIO)

	// The in-memory state stays authoritative.
	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestLoadFresh(t *testing.T) {
	oldDir := models.SaveDir
	models.SaveDir = t.TempDir()
	defer func() { models.SaveDir = oldDir }()

	s := NewStore()
	require.NoError(t, s.Load(), "missing save file should not be an error")
	assert.Zero(t, s.Len())
}

func TestResolveName(t *testing.T) {
	s := NewStore()
	lily := testRecord("Water Lily")
	cactus := testRecord("Spiky Cactus")
	s.AddOrUpdate(lily)
	s.AddOrUpdate(cactus)

	tests := []struct {
		input  string
		wantID string
		ok     bool
	}{
		{"water lily", lily.ID, true},
		{"  Water  LILY ", lily.ID, true},
		{"water lilly", lily.ID, true}, // one edit away
		{"spiky cactos", cactus.ID, true},
		{"rosebush", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := s.ResolveName(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.wantID, id, "input %q", tt.input)
	}
}
