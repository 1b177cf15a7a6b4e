package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PresetEntry is the on-disk form of a named gradient preset.
type PresetEntry struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// LoadPresetEntries reads the "presets" object from path. A missing file
// yields no entries and no error.
func LoadPresetEntries(path string) (map[string]PresetEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var raw struct {
		Presets map[string]PresetEntry `json:"presets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw.Presets, nil
}

// SavePresetEntries merges entries into the "presets" object at path. Entries
// replace existing presets of the same name; other presets and other
// top-level keys are kept. An existing file that is not valid JSON is left
// untouched and reported as an error.
func SavePresetEntries(path string, entries map[string]PresetEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var payload map[string]json.RawMessage
	if existing, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(existing, &payload); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	// A file holding JSON null decodes to a nil map.
	if payload == nil {
		payload = map[string]json.RawMessage{}
	}

	var merged map[string]PresetEntry
	if raw, ok := payload["presets"]; ok {
		if err := json.Unmarshal(raw, &merged); err != nil {
			return fmt.Errorf("parse %s presets: %w", path, err)
		}
	}
	if merged == nil {
		merged = map[string]PresetEntry{}
	}
	for name, entry := range entries {
		merged[name] = entry
	}

	encoded, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	payload["presets"] = encoded

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
