package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dstaley/umbra/internal/appearance"
	"github.com/dstaley/umbra/internal/config"
	"github.com/dstaley/umbra/internal/infrastructure/sqlite"
	"github.com/dstaley/umbra/internal/log"
	"github.com/dstaley/umbra/internal/paths"
	"github.com/dstaley/umbra/internal/theme"
	"github.com/dstaley/umbra/internal/ui/preview"
	"github.com/dstaley/umbra/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	logFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "umbra",
	Short:   "A themeable design system for terminal UIs",
	Long:    `Umbra is a design token system for terminal applications: light/dark theme pairs built from named color tokens, a persisted mode preference, and a live preview.`,
	Version: version,
	RunE:    runPreview,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/umbra/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "",
		"write a debug log to this file")
	rootCmd.Flags().Bool("no-live-reload", false,
		"disable config file watching")
}

// newViper builds a viper instance with the "::" key delimiter so dotted
// color token keys like "text.primary" survive as map keys.
func newViper() *viper.Viper {
	return viper.NewWithOptions(viper.KeyDelimiter("::"))
}

func initConfig() {
	v := newViper()

	defaults := config.Defaults()
	v.SetDefault("ui::show_help", defaults.UI.ShowHelp)
	v.SetDefault("ui::live_reload", defaults.UI.LiveReload)
	v.SetDefault("ui::appearance_poll", defaults.UI.AppearancePoll)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigFile(paths.ConfigFile())
	}

	if err := v.ReadInConfig(); err != nil {
		// No config file yet - write the commented default and retry.
		// SetConfigFile surfaces a missing file as a path error rather
		// than viper.ConfigFileNotFoundError; anything else (a parse
		// error in an existing file) must leave the file untouched.
		if os.IsNotExist(err) {
			if writeErr := config.WriteDefaultConfig(v.ConfigFileUsed()); writeErr == nil {
				_ = v.ReadInConfig()
			}
		}
	}

	cfgFile = v.ConfigFileUsed()
	_ = v.Unmarshal(&cfg)
}

// loadConfig re-reads the config file, used by the live reload watcher.
func loadConfig(path string) (config.Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("reading config: %w", err)
	}
	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

// openDB opens the preference database at the configured state directory.
func openDB() (*sqlite.DB, error) {
	db, err := sqlite.NewDB(paths.StateDBPath(cfg.StateDir))
	if err != nil {
		return nil, fmt.Errorf("opening preference database: %w", err)
	}
	return db, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	if logFile != "" {
		cleanup, err := log.InitWithTeaLog(logFile, "umbra")
		if err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}
		defer cleanup()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	light, dark, err := cfg.BuildThemes()
	if err != nil {
		return fmt.Errorf("building themes: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := appearance.NewMonitor(nil)
	defer monitor.Close()
	if cfg.UI.AppearancePoll > 0 {
		go monitor.Poll(ctx, cfg.UI.AppearancePoll)
	}

	mgr := theme.NewManager(ctx, db.Preferences(), monitor, theme.WithThemes(light, dark))
	defer mgr.Close()

	model := preview.New(ctx, preview.Config{
		Manager:    mgr,
		ConfigPath: cfgFile,
		Preset:     cfg.Theme.Preset,
		Overrides:  cfg.Theme.FlattenedColors(),
		ShowHelp:   cfg.UI.ShowHelp,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if noReload, _ := cmd.Flags().GetBool("no-live-reload"); noReload {
		cfg.UI.LiveReload = false
	}

	var w *watcher.Watcher
	if cfg.UI.LiveReload && cfgFile != "" {
		w, err = watcher.New(watcher.DefaultConfig(cfgFile))
		if err != nil {
			log.ErrorErr(log.CatWatcher, "Failed to create watcher", err)
		} else {
			onChange, startErr := w.Start()
			if startErr != nil {
				log.ErrorErr(log.CatWatcher, "Failed to start watcher", startErr)
			} else {
				go reloadLoop(ctx, p, cfgFile, onChange)
			}
		}
	}

	_, err = p.Run()

	if w != nil {
		_ = w.Stop()
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// reloadLoop rebuilds the theme pair whenever the config file changes and
// pushes the result into the running program.
func reloadLoop(ctx context.Context, p *tea.Program, configPath string, onChange <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-onChange:
			if !ok {
				return
			}
			c, err := loadConfig(configPath)
			if err != nil {
				log.ErrorErr(log.CatConfig, "Reload failed", err, "path", configPath)
				continue
			}
			light, dark, err := c.BuildThemes()
			if err != nil {
				log.ErrorErr(log.CatTheme, "Reload produced invalid theme", err)
				continue
			}
			log.Info(log.CatConfig, "Config reloaded", "path", configPath)
			p.Send(preview.ThemesReloadedMsg{Light: light, Dark: dark})
		}
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
