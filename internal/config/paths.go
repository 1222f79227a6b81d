package config

import (
	"os"
	"path/filepath"
)

const (
	HiddenDir    = ".prompts"
	MetaFile     = "meta.json"
	IgnoreMarker = ".gitignore"
	LockFile     = ".promptvc-lock.json"
	TemplatesDir = "templates"
)

// RootMarkers anchor project root discovery, checked in walk order.
var RootMarkers = []string{".git", "go.mod", "package.json", "pyproject.toml", HiddenDir}

// UserConfigDir returns the per-user configuration directory
// ($XDG_CONFIG_HOME/promptvc or the platform equivalent).
func UserConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName)
}
