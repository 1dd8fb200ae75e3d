package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dstaley/umbra/internal/config"
	"github.com/dstaley/umbra/internal/infrastructure/sqlite"
	"github.com/dstaley/umbra/internal/theme"
)

func TestLoadConfig_ReadsPresetAndOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(`
theme:
  preset: nord
  colors:
    "accent": "#FF00FF"
ui:
  show_help: false
`), 0o644)
	require.NoError(t, err)

	c, err := loadConfig(configPath)
	require.NoError(t, err)
	require.Equal(t, "nord", c.Theme.Preset)
	require.False(t, c.UI.ShowHelp)

	light, dark, err := c.BuildThemes()
	require.NoError(t, err)
	require.Equal(t, "#FF00FF", light.Colors[theme.TokenAccent])
	require.Equal(t, "#FF00FF", dark.Colors[theme.TokenAccent])
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_DefaultTemplate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(configPath))

	c, err := loadConfig(configPath)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
}

func TestInitConfig_PreservesMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	oldCfgFile, oldCfg := cfgFile, cfg
	cfgFile = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { cfgFile, cfg = oldCfgFile, oldCfg })

	// Broken indentation: parses as a YAML error, not a missing file.
	broken := []byte("theme:\n preset: nord\n   colors: oops\n")
	require.NoError(t, os.WriteFile(cfgFile, broken, 0o644))

	initConfig()

	after, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	require.Equal(t, broken, after)
}

func TestInitConfig_WritesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	oldCfgFile, oldCfg := cfgFile, cfg
	cfgFile = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { cfgFile, cfg = oldCfgFile, oldCfg })

	initConfig()

	written, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	require.Contains(t, string(written), "umbra configuration")
	require.True(t, cfg.UI.ShowHelp)
}

func TestThemesCommand_ListsPresets(t *testing.T) {
	var out bytes.Buffer
	cmd := themesCmd
	cmd.SetOut(&out)

	require.NoError(t, runThemesList(cmd, nil))
	for _, name := range theme.PresetNames() {
		require.Contains(t, out.String(), name)
	}
}

func TestThemesUse_RejectsUnknownPreset(t *testing.T) {
	err := runThemesUse(themesUseCmd, []string{"nonexistent"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme preset")
}

func TestThemesUse_WritesPreset(t *testing.T) {
	dir := t.TempDir()
	oldCfgFile := cfgFile
	cfgFile = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { cfgFile = oldCfgFile })

	var out bytes.Buffer
	themesUseCmd.SetOut(&out)

	require.NoError(t, runThemesUse(themesUseCmd, []string{"dracula"}))

	c, err := loadConfig(cfgFile)
	require.NoError(t, err)
	require.Equal(t, "dracula", c.Theme.Preset)
}

func TestModeRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "umbra.db")
	db, err := sqlite.NewDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := db.Preferences()
	ctx := context.Background()

	// No preference stored yet
	_, ok, err := store.Get(ctx, theme.ModeKey)
	require.NoError(t, err)
	require.False(t, ok)

	// Store a mode the way `umbra mode dark` does
	mode, err := theme.ParseMode("dark")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, theme.ModeKey, string(mode)))

	value, ok, err := store.Get(ctx, theme.ModeKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", value)
}
