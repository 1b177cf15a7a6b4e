package config

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv overrides the default ~/.termgradient location.
const HomeEnv = "TERMGRADIENT_HOME"

// Paths holds all the file system paths used by the library
type Paths struct {
	Home        string // ~/.termgradient
	PresetsPath string // ~/.termgradient/presets.json
	LogDir      string // ~/.termgradient/logs
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	if override := strings.TrimSpace(os.Getenv(HomeEnv)); override != "" {
		return PathsAt(override), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return PathsAt(filepath.Join(home, ".termgradient")), nil
}

// PathsAt lays out the standard files beneath root.
func PathsAt(root string) *Paths {
	return &Paths{
		Home:        root,
		PresetsPath: filepath.Join(root, "presets.json"),
		LogDir:      filepath.Join(root, "logs"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
