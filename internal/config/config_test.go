package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/dstaley/umbra/internal/theme"
)

// loadConfigFromYAML is a helper to load config from a YAML string.
func loadConfigFromYAML(t *testing.T, yaml string) Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(yaml), 0o644)
	require.NoError(t, err)

	// Custom key delimiter "::" lets dotted keys like "text.primary" live
	// in the theme.colors map without viper treating them as nested paths.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(configPath)
	err = v.ReadInConfig()
	require.NoError(t, err)

	var cfg Config
	err = v.Unmarshal(&cfg)
	require.NoError(t, err)
	return cfg
}

func TestConfig_WithPreset(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  preset: catppuccin
`)
	require.Equal(t, "catppuccin", cfg.Theme.Preset)

	light, dark, err := cfg.BuildThemes()
	require.NoError(t, err)
	require.Equal(t, "#4C4F69", light.Colors[theme.TokenTextPrimary])
	require.Equal(t, "#CDD6F4", dark.Colors[theme.TokenTextPrimary])
}

func TestConfig_ColorOverridesNested(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  colors:
    text:
      primary: "#FF0000"
    status:
      error: "#00FF00"
`)
	flat := cfg.Theme.FlattenedColors()
	require.Equal(t, "#FF0000", flat["text.primary"])
	require.Equal(t, "#00FF00", flat["status.error"])
}

func TestConfig_ColorOverridesDotNotation(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  colors:
    "text.primary": "#FF0000"
`)
	flat := cfg.Theme.FlattenedColors()
	require.Equal(t, "#FF0000", flat["text.primary"])

	_, dark, err := cfg.BuildThemes()
	require.NoError(t, err)
	require.Equal(t, "#FF0000", dark.Colors[theme.TokenTextPrimary])
}

func TestConfig_PresetWithOverrides(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  preset: dracula
  colors:
    "text.primary": "#123456"
`)
	light, dark, err := cfg.BuildThemes()
	require.NoError(t, err)
	// Override wins over the preset.
	require.Equal(t, "#123456", light.Colors[theme.TokenTextPrimary])
	require.Equal(t, "#123456", dark.Colors[theme.TokenTextPrimary])
	// Preset still supplies the rest.
	require.Equal(t, "#FF5555", dark.Colors[theme.TokenStatusError])
}

func TestConfig_ValidateRejectsBadTheme(t *testing.T) {
	cfg := Config{Theme: ThemeConfig{Preset: "nonexistent"}}
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme preset")

	cfg = Config{Theme: ThemeConfig{Colors: map[string]any{"text.primary": "not-a-color"}}}
	err = cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid hex color")
}

func TestConfig_ValidateRejectsRelativeStateDir(t *testing.T) {
	cfg := Defaults()
	cfg.StateDir = "relative/path"
	require.Error(t, cfg.Validate())

	cfg.StateDir = filepath.Join(t.TempDir(), "state")
	require.NoError(t, cfg.Validate())
}

func TestConfig_ValidateRejectsNegativePoll(t *testing.T) {
	cfg := Defaults()
	cfg.UI.AppearancePoll = -time.Second
	require.Error(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	require.True(t, cfg.UI.ShowHelp)
	require.True(t, cfg.UI.LiveReload)
	require.Equal(t, 5*time.Second, cfg.UI.AppearancePoll)
}

func TestWriteDefaultConfig_TemplateRoundTrips(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.NoError(t, cfg.Validate())
	require.True(t, cfg.UI.LiveReload)
	require.Equal(t, 5*time.Second, cfg.UI.AppearancePoll)
}
