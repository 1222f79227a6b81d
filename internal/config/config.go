package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

const AppName = "promptvc"

const (
	DefaultHash     = "xxh3" // "xxh3" | "sha256"
	DefaultTemplate = "basic"
)

// SetDefaults registers every supported user setting with viper.
func SetDefaults() {
	viper.SetDefault("hash", DefaultHash)
	viper.SetDefault("template.default", DefaultTemplate)
	viper.SetDefault("template.dir", filepath.Join(UserConfigDir(), TemplatesDir))
}

// SelectedHash returns the configured hash algorithm.
// Falls back to "xxh3" if not specified or config is missing.
func SelectedHash() string {
	if h := viper.GetString("hash"); h != "" {
		return h
	}
	return DefaultHash
}

// UserTemplateDir returns the directory holding user-added templates.
func UserTemplateDir() string {
	if dir := viper.GetString("template.dir"); dir != "" {
		return dir
	}
	return filepath.Join(UserConfigDir(), TemplatesDir)
}

// DefaultTemplateName returns the template used when neither the
// command line nor the file extension selects one.
func DefaultTemplateName() string {
	if name := viper.GetString("template.default"); name != "" {
		return name
	}
	return DefaultTemplate
}
