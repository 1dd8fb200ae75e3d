package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dstaley/umbra/internal/theme"
)

var modeCmd = &cobra.Command{
	Use:   "mode [light|dark|system]",
	Short: "Show or set the persisted theme mode",
	Long: `Without arguments, prints the stored theme mode preference.
With an argument, stores that mode so the next run starts with it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMode,
}

func init() {
	rootCmd.AddCommand(modeCmd)
}

func runMode(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store := db.Preferences()
	ctx := cmd.Context()

	if len(args) == 0 {
		value, ok, err := store.Get(ctx, theme.ModeKey)
		if err != nil {
			return fmt.Errorf("reading mode: %w", err)
		}
		mode := theme.ModeSystem
		if ok {
			if parsed, parseErr := theme.ParseMode(value); parseErr == nil {
				mode = parsed
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), mode)
		return nil
	}

	mode, err := theme.ParseMode(args[0])
	if err != nil {
		return err
	}
	if err := store.Set(ctx, theme.ModeKey, string(mode)); err != nil {
		return fmt.Errorf("storing mode: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme mode set to %s\n", mode)
	return nil
}
