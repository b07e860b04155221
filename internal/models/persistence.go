package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var SaveDir = ".saves"

const inventoryFile = "inventory.yaml"

// Save writes the inventory state to the save directory.
func (s *InventoryState) Save() error {
	if err := os.MkdirAll(SaveDir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(SaveDir, inventoryFile), data, 0644)
}

// LoadInventoryState reads the inventory state from the save directory.
// A missing save file is not an error: a fresh empty state is returned.
func LoadInventoryState() (*InventoryState, error) {
	data, err := os.ReadFile(filepath.Join(SaveDir, inventoryFile))
	if os.IsNotExist(err) {
		return &InventoryState{}, nil
	}
	if err != nil {
		return nil, err
	}

	var state InventoryState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
