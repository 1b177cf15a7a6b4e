// Package presets provides named gradient endpoint pairs, both built in and
// loaded from the user's presets file.
package presets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/andyrewlee/termgradient/gradient"
	"github.com/andyrewlee/termgradient/internal/config"
	"github.com/andyrewlee/termgradient/internal/logging"
	"github.com/andyrewlee/termgradient/internal/validation"
)

// Preset is a reusable gradient configuration without text.
type Preset struct {
	Name   string
	Start  gradient.Colour
	End    gradient.Colour
	Bold   bool
	Italic bool
}

// Builder returns a fresh builder carrying the preset's colours and style.
func (p Preset) Builder() *gradient.GradientBuilder {
	b := gradient.NewBuilder().StartColour(p.Start).EndColour(p.End)
	if p.Bold {
		b = b.Bold()
	}
	if p.Italic {
		b = b.Italic()
	}
	return b
}

// Apply builds a gradient for text using the preset.
func (p Preset) Apply(text string) (gradient.Gradient, error) {
	return p.Builder().Text(text).Build()
}

func (p Preset) validate() error {
	if err := validation.ValidatePresetName(p.Name); err != nil {
		return err
	}
	if p.Start.IsZero() {
		return &validation.ValidationError{Field: "start", Message: "start colour must be set"}
	}
	if p.End.IsZero() {
		return &validation.ValidationError{Field: "end", Message: "end colour must be set"}
	}
	return nil
}

func mustHex(v uint32) gradient.Colour {
	c, err := gradient.ColourFromHex(v)
	if err != nil {
		panic(err)
	}
	return c
}

// Builtin returns the presets that ship with the library. Endpoints are the
// primary/secondary accents of the matching terminal themes.
func Builtin() []Preset {
	return []Preset{
		{Name: "hello", Start: mustHex(0x24F26F), End: mustHex(0x8424F2)},
		{Name: "gruvbox", Start: mustHex(0xFE8019), End: mustHex(0xD3869B)},
		{Name: "tokyo-night", Start: mustHex(0x7AA2F7), End: mustHex(0xBB9AF7)},
		{Name: "dracula", Start: mustHex(0xBD93F9), End: mustHex(0xFF79C6)},
		{Name: "nord", Start: mustHex(0x88C0D0), End: mustHex(0xB48EAD)},
		{Name: "catppuccin", Start: mustHex(0xCBA6F7), End: mustHex(0xF5C2E7)},
		{Name: "rose-pine", Start: mustHex(0xEBBCBA), End: mustHex(0xC4A7E7), Italic: true},
	}
}

// Registry is a concurrency-safe set of presets keyed by name.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewRegistry returns a registry seeded with Builtin.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset)}
	for _, p := range Builtin() {
		r.presets[p.Name] = p
	}
	return r
}

// Add registers p, replacing any preset with the same name.
func (r *Registry) Add(p Preset) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.presets[p.Name] = p
	r.mu.Unlock()
	return nil
}

// Get looks up a preset by name.
func (r *Registry) Get(name string) (Preset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[strings.TrimSpace(name)]
	return p, ok
}

// Names returns all preset names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// LoadFile returns the built-in presets overlaid with the entries in path.
// A missing file is not an error. Invalid entries are skipped with a warning.
func LoadFile(path string) (*Registry, error) {
	r := NewRegistry()

	entries, err := config.LoadPresetEntries(path)
	if err != nil {
		return nil, err
	}

	for name, entry := range entries {
		p, err := fromEntry(name, entry)
		if err == nil {
			err = r.Add(p)
		}
		if err != nil {
			logging.Warn("skipping preset %q in %s: %v", name, path, err)
		}
	}
	return r, nil
}

// LoadUser loads the presets file from the default location.
func LoadUser() (*Registry, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFile(paths.PresetsPath)
}

// SaveFile merges presets into the file at path. Presets already in the file
// but absent from the list are kept; listed presets replace same-named ones.
// Built-ins are not written unless included. A name repeated within the list
// is rejected and nothing is written.
func SaveFile(path string, presets []Preset) error {
	entries := make(map[string]config.PresetEntry, len(presets))
	for _, p := range presets {
		if err := p.validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if _, dup := entries[p.Name]; dup {
			return &validation.ValidationError{Field: "name", Message: fmt.Sprintf("preset %q listed more than once", p.Name)}
		}
		entries[p.Name] = config.PresetEntry{
			Start:  p.Start.Hex(),
			End:    p.End.Hex(),
			Bold:   p.Bold,
			Italic: p.Italic,
		}
	}
	return config.SavePresetEntries(path, entries)
}

func fromEntry(name string, entry config.PresetEntry) (Preset, error) {
	if err := validation.ValidateHexColour("start", entry.Start); err != nil {
		return Preset{}, err
	}
	if err := validation.ValidateHexColour("end", entry.End); err != nil {
		return Preset{}, err
	}

	start, err := gradient.ParseColour(entry.Start)
	if err != nil {
		return Preset{}, err
	}
	end, err := gradient.ParseColour(entry.End)
	if err != nil {
		return Preset{}, err
	}

	return Preset{
		Name:   name,
		Start:  start,
		End:    end,
		Bold:   entry.Bold,
		Italic: entry.Italic,
	}, nil
}
