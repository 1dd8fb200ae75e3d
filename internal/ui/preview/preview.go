// Package preview contains the theme preview component, a small dashboard
// that renders every token of the active theme and reacts to mode changes.
package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dstaley/umbra/internal/appearance"
	"github.com/dstaley/umbra/internal/config"
	"github.com/dstaley/umbra/internal/keys"
	"github.com/dstaley/umbra/internal/log"
	"github.com/dstaley/umbra/internal/pubsub"
	"github.com/dstaley/umbra/internal/theme"
	"github.com/dstaley/umbra/internal/ui/colorpicker"
	"github.com/dstaley/umbra/internal/ui/styles"
)

// ThemesReloadedMsg carries a rebuilt theme pair after a config change.
// The cmd layer sends it via Program.Send when the watcher fires.
type ThemesReloadedMsg struct {
	Light *theme.Theme
	Dark  *theme.Theme
}

// presetSavedMsg reports the result of persisting a preset choice.
type presetSavedMsg struct {
	preset string
	err    error
}

// colorSavedMsg reports the result of persisting a token override.
type colorSavedMsg struct {
	token theme.ColorToken
	err   error
}

// Config holds preview construction options.
type Config struct {
	Manager *theme.Manager

	// ConfigPath, when set, is where preset cycling is persisted.
	ConfigPath string

	// Preset is the configured starting preset; empty means "default".
	Preset string

	// Overrides are the configured token overrides, kept so preset
	// cycling and color edits rebuild on top of them.
	Overrides map[string]string

	ShowHelp bool
}

// Model holds the preview state.
type Model struct {
	ctx     context.Context
	manager *theme.Manager

	keys keys.KeyMap
	help help.Model

	configPath string
	preset     string
	presetIdx  int
	overrides  map[string]string

	picker     colorpicker.Model
	pickerOpen bool

	showHelp bool
	status   string
	width    int
	height   int
}

// New creates the preview component.
func New(ctx context.Context, cfg Config) Model {
	preset := cfg.Preset
	if preset == "" {
		preset = "default"
	}
	overrides := make(map[string]string, len(cfg.Overrides))
	for token, hex := range cfg.Overrides {
		overrides[token] = hex
	}
	return Model{
		ctx:        ctx,
		manager:    cfg.Manager,
		keys:       keys.DefaultKeyMap(),
		help:       help.New(),
		configPath: cfg.ConfigPath,
		preset:     preset,
		presetIdx:  presetIndex(preset),
		overrides:  overrides,
		showHelp:   cfg.ShowHelp,
	}
}

// presetIndex locates preset in the preset name list so cycling starts
// from the configured preset rather than from the front.
func presetIndex(preset string) int {
	for i, name := range theme.PresetNames() {
		if name == preset {
			return i
		}
	}
	return 0
}

// Init starts listening for terminal scheme changes.
func (m Model) Init() tea.Cmd {
	return m.waitForScheme()
}

// waitForScheme re-arms the appearance subscription.
func (m Model) waitForScheme() tea.Cmd {
	return pubsub.WaitCmd(m.ctx, m.manager.Changes())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.picker = m.picker.SetSize(msg.Width, msg.Height)
		return m, nil

	case colorpicker.SelectMsg:
		return m.applyOverride(msg)

	case colorpicker.CancelMsg:
		m.pickerOpen = false
		return m, nil

	case colorSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatUI, "Failed to save color override", msg.err, "token", msg.token)
			m.status = fmt.Sprintf("could not save %s: %v", msg.token, msg.err)
		} else {
			m.status = fmt.Sprintf("saved %s", msg.token)
		}
		return m, nil

	case pubsub.Event[appearance.Scheme]:
		// Nothing to mutate; Current re-derives from the monitor. The
		// status line notes the flip and the view re-renders.
		m.status = fmt.Sprintf("terminal scheme: %s", msg.Payload)
		return m, m.waitForScheme()

	case ThemesReloadedMsg:
		m.manager.Swap(msg.Light, msg.Dark)
		m.status = "config reloaded"
		return m, nil

	case presetSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatUI, "Failed to save preset", msg.err, "preset", msg.preset)
			m.status = fmt.Sprintf("could not save preset: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("preset saved: %s", msg.preset)
		}
		return m, nil

	case tea.KeyMsg:
		if m.pickerOpen {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.manager.Toggle(m.ctx)
		m.status = fmt.Sprintf("mode: %s", m.manager.Mode())
		return m, nil

	case key.Matches(msg, m.keys.CycleMode):
		next := nextMode(m.manager.Mode())
		m.manager.SetMode(m.ctx, next)
		m.status = fmt.Sprintf("mode: %s", next)
		return m, nil

	case key.Matches(msg, m.keys.Preset):
		return m.cyclePreset()

	case key.Matches(msg, m.keys.EditColor):
		t := m.manager.Current()
		m.picker = colorpicker.New(theme.TokenAccent, t.Variant).
			SetSize(m.width, m.height).
			SetSelected(t.Colors[theme.TokenAccent])
		m.pickerOpen = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// nextMode cycles light -> dark -> system -> light.
func nextMode(mode theme.Mode) theme.Mode {
	switch mode {
	case theme.ModeLight:
		return theme.ModeDark
	case theme.ModeDark:
		return theme.ModeSystem
	default:
		return theme.ModeLight
	}
}

// cyclePreset rebuilds the theme pair from the next preset and swaps it in.
func (m Model) cyclePreset() (tea.Model, tea.Cmd) {
	names := theme.PresetNames()
	m.presetIdx = (m.presetIdx + 1) % len(names)
	m.preset = names[m.presetIdx]

	light, dark, err := theme.Build(m.preset, m.overrides)
	if err != nil {
		m.status = fmt.Sprintf("preset %s: %v", m.preset, err)
		return m, nil
	}
	m.manager.Swap(light, dark)
	m.status = fmt.Sprintf("preset: %s", m.preset)

	if m.configPath == "" {
		return m, nil
	}
	path, preset := m.configPath, m.preset
	return m, func() tea.Msg {
		return presetSavedMsg{preset: preset, err: config.SavePreset(path, preset)}
	}
}

// applyOverride rebuilds the theme pair with the picked token color and
// persists it when a config path is known.
func (m Model) applyOverride(msg colorpicker.SelectMsg) (tea.Model, tea.Cmd) {
	m.pickerOpen = false
	m.overrides[string(msg.Token)] = msg.Hex

	light, dark, err := theme.Build(m.preset, m.overrides)
	if err != nil {
		delete(m.overrides, string(msg.Token))
		m.status = fmt.Sprintf("%s: %v", msg.Token, err)
		return m, nil
	}
	m.manager.Swap(light, dark)
	m.status = fmt.Sprintf("%s = %s", msg.Token, msg.Hex)

	if m.configPath == "" {
		return m, nil
	}
	path, token, hex := m.configPath, string(msg.Token), msg.Hex
	return m, func() tea.Msg {
		return colorSavedMsg{token: msg.Token, err: config.SaveColorOverride(path, token, hex)}
	}
}

// Preset returns the currently selected preset name.
func (m Model) Preset() string {
	return m.preset
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// View renders the preview dashboard for the active theme.
func (m Model) View() string {
	t := m.manager.Current()
	s := styles.New(t)

	var b strings.Builder

	b.WriteString(s.Title.Render("umbra"))
	b.WriteString(" ")
	b.WriteString(s.Subtitle.Render("design tokens for the terminal"))
	b.WriteString("\n\n")

	b.WriteString(s.Body.Render(fmt.Sprintf("mode %s", m.manager.Mode())))
	b.WriteString(s.Muted.Render(fmt.Sprintf("  variant %s", t.Variant)))
	b.WriteString(s.Muted.Render(fmt.Sprintf("  preset %s", m.preset)))
	b.WriteString("\n\n")

	b.WriteString(s.Success.Render("success"))
	b.WriteString("  ")
	b.WriteString(s.Warning.Render("warning"))
	b.WriteString("  ")
	b.WriteString(s.Error.Render("error"))
	b.WriteString("  ")
	b.WriteString(s.Info.Render("info"))
	b.WriteString("\n\n")

	b.WriteString(s.SelectionIndicator.Render("> "))
	b.WriteString(s.SelectedRow.Render("selected row"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("  unselected row"))
	b.WriteString("\n\n")

	b.WriteString(s.Accent.Render("accent"))
	b.WriteString("  ")
	b.WriteString(s.AccentStrong.Render("accent.strong"))
	b.WriteString("  ")
	b.WriteString(s.Link.Render("https://example.com"))
	b.WriteString("\n")

	width := m.width
	if width <= 0 {
		width = 60
	}
	panelWidth := min(width, 72)
	panel := s.RenderTitledPanel(t, b.String(), "Theme Preview", panelWidth, 14, true)

	var footer string
	if m.status != "" {
		footer = s.StatusBar.Render(m.status)
	}
	if m.showHelp {
		if footer != "" {
			footer += "\n"
		}
		footer += m.help.View(m.keys)
	}

	view := panel
	if footer != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, panel, footer)
	}

	if m.pickerOpen {
		return m.picker.Overlay(t, view)
	}
	return view
}
