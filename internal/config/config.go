// Package config provides configuration types, defaults, and persistence for
// umbra.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dstaley/umbra/internal/log"
	"github.com/dstaley/umbra/internal/theme"
)

// Config holds all configuration options for umbra.
type Config struct {
	Theme    ThemeConfig `mapstructure:"theme"`
	UI       UIConfig    `mapstructure:"ui"`
	StateDir string      `mapstructure:"state_dir"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowHelp bool `mapstructure:"show_help"` // Show the key help footer

	// LiveReload rebuilds the theme pair when the config file changes.
	LiveReload bool `mapstructure:"live_reload"`

	// AppearancePoll is how often the terminal scheme is re-detected while
	// the preview runs. Zero disables polling.
	AppearancePoll time.Duration `mapstructure:"appearance_poll"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset selects a built-in palette pair as the base (optional).
	// Valid values: "default", "catppuccin", "dracula", "nord"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens, applied to both
	// variants. Supports nested YAML structure and quoted dot notation:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// or:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// BuildThemes composes the light/dark theme pair described by this config.
func (c Config) BuildThemes() (light, dark *theme.Theme, err error) {
	return theme.Build(c.Theme.Preset, c.Theme.FlattenedColors())
}

// Validate checks the configuration for errors beyond what viper enforces.
func (c Config) Validate() error {
	if _, _, err := c.BuildThemes(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if c.UI.AppearancePoll < 0 {
		return fmt.Errorf("ui.appearance_poll must not be negative, got %v", c.UI.AppearancePoll)
	}
	if c.StateDir != "" && !filepath.IsAbs(c.StateDir) {
		return fmt.Errorf("state_dir must be an absolute path, got %q", c.StateDir)
	}
	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{
			Preset: "",
		},
		UI: UIConfig{
			ShowHelp:       true,
			LiveReload:     true,
			AppearancePoll: 5 * time.Second,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with
// comments.
func DefaultConfigTemplate() string {
	return `# umbra configuration

# Theme configuration
# Use a preset palette pair or customize individual color tokens
theme:
  # Use a preset (run 'umbra themes' to see available presets):
  # preset: catppuccin
  #
  # Available presets:
  #   default     - Default umbra theme
  #   catppuccin  - Catppuccin Latte / Mocha - warm pastel palette
  #   dracula     - Dark theme with vibrant colors
  #   nord        - Arctic, north-bluish palette
  #
  # Override specific color tokens (applies to both light and dark):
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"

# UI settings
ui:
  show_help: true        # Show the key help footer in the preview
  live_reload: true      # Rebuild the theme when this file changes
  appearance_poll: 5s    # Terminal scheme re-detection interval (0 disables)

# Where the preference database lives
# state_dir: /home/you/.local/state/umbra
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
