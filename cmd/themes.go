package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dstaley/umbra/internal/config"
	"github.com/dstaley/umbra/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	RunE:  runThemesList,
}

var themesUseCmd = &cobra.Command{
	Use:   "use <preset>",
	Short: "Set the theme preset in the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesUse,
}

func init() {
	themesCmd.AddCommand(themesUseCmd)
	rootCmd.AddCommand(themesCmd)
}

func runThemesList(cmd *cobra.Command, args []string) error {
	current := cfg.Theme.Preset
	if current == "" {
		current = "default"
	}

	for _, name := range theme.PresetNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s\n", marker, name, theme.Presets[name].Description)
	}
	return nil
}

func runThemesUse(cmd *cobra.Command, args []string) error {
	preset := args[0]
	if _, ok := theme.Presets[preset]; !ok {
		return fmt.Errorf("unknown theme preset: %s (run 'umbra themes' to list)", preset)
	}

	if err := config.SavePreset(cfgFile, preset); err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme preset set to %s\n", preset)
	return nil
}
