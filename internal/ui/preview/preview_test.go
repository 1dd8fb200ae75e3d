package preview

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/dstaley/umbra/internal/appearance"
	"github.com/dstaley/umbra/internal/pubsub"
	"github.com/dstaley/umbra/internal/theme"
	"github.com/dstaley/umbra/internal/ui/colorpicker"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	m.Run()
}

// memStore is an in-memory preference store for tests.
type memStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func newTestModel(t *testing.T) (Model, *theme.Manager) {
	t.Helper()
	monitor := appearance.NewMonitor(func() appearance.Scheme { return appearance.SchemeDark })
	mgr := theme.NewManager(context.Background(), newMemStore(), monitor)
	t.Cleanup(mgr.Close)

	m := New(context.Background(), Config{Manager: mgr, ShowHelp: true})
	return m, mgr
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreview_InitStartsSchemeListener(t *testing.T) {
	m, _ := newTestModel(t)
	require.NotNil(t, m.Init())
}

func TestPreview_ToggleKeySwitchesVariant(t *testing.T) {
	m, mgr := newTestModel(t)
	require.True(t, mgr.IsDark())

	next, cmd := m.Update(keyMsg("t"))
	require.Nil(t, cmd)

	require.False(t, mgr.IsDark())
	require.Same(t, theme.Light, mgr.Current())
	require.Contains(t, next.(Model).Status(), "light")
}

func TestPreview_CycleModeKey(t *testing.T) {
	m, mgr := newTestModel(t)
	require.Equal(t, theme.ModeSystem, mgr.Mode())

	next, _ := m.Update(keyMsg("m"))
	require.Equal(t, theme.ModeLight, mgr.Mode())

	next, _ = next.(Model).Update(keyMsg("m"))
	require.Equal(t, theme.ModeDark, mgr.Mode())

	_, _ = next.(Model).Update(keyMsg("m"))
	require.Equal(t, theme.ModeSystem, mgr.Mode())
}

func TestPreview_PresetKeySwapsThemes(t *testing.T) {
	m, mgr := newTestModel(t)
	before := mgr.Current()

	next, cmd := m.Update(keyMsg("p"))
	// No config path, so nothing to persist
	require.Nil(t, cmd)

	pm := next.(Model)
	require.NotEqual(t, "default", pm.Preset())
	require.NotSame(t, before, mgr.Current())
}

func TestPreview_ConfiguredPresetSeedsCycle(t *testing.T) {
	_, mgr := newTestModel(t)
	m := New(context.Background(), Config{Manager: mgr, Preset: "nord"})
	require.Equal(t, "nord", m.Preset())

	names := theme.PresetNames()
	var nordIdx int
	for i, name := range names {
		if name == "nord" {
			nordIdx = i
		}
	}

	next, _ := m.Update(keyMsg("p"))
	require.Equal(t, names[(nordIdx+1)%len(names)], next.(Model).Preset())
}

func TestPreview_ConfiguredOverridesSurvivePresetCycle(t *testing.T) {
	_, mgr := newTestModel(t)
	m := New(context.Background(), Config{
		Manager:   mgr,
		Preset:    "dracula",
		Overrides: map[string]string{"accent": "#FF00FF"},
	})

	next, _ := m.Update(keyMsg("p"))
	require.Equal(t, "#FF00FF", mgr.Current().Colors[theme.TokenAccent])

	// A picked color layers on top of the configured overrides.
	_, _ = next.(Model).Update(colorpicker.SelectMsg{
		Token: theme.TokenStatusError,
		Hex:   "#00FF00",
	})
	require.Equal(t, "#FF00FF", mgr.Current().Colors[theme.TokenAccent])
	require.Equal(t, "#00FF00", mgr.Current().Colors[theme.TokenStatusError])
}

func TestPreview_PresetCycleWrapsAround(t *testing.T) {
	m, _ := newTestModel(t)

	var model tea.Model = m
	names := theme.PresetNames()
	for range names {
		model, _ = model.(Model).Update(keyMsg("p"))
	}
	require.Equal(t, "default", model.(Model).Preset())
}

func TestPreview_ThemesReloadedSwapsPair(t *testing.T) {
	m, mgr := newTestModel(t)

	light, dark, err := theme.Build("nord", nil)
	require.NoError(t, err)

	_, _ = m.Update(ThemesReloadedMsg{Light: light, Dark: dark})
	require.Same(t, dark, mgr.Current())
}

func TestPreview_QuitKeyReturnsQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestPreview_SchemeEventRearmsListener(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(pubsub.Event[appearance.Scheme]{Payload: appearance.SchemeLight})
	require.NotNil(t, cmd)
	require.Contains(t, next.(Model).Status(), "light")
}

func TestPreview_ViewRendersTokens(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := next.(Model).View()

	require.Contains(t, view, "umbra")
	require.Contains(t, view, "Theme Preview")
	require.Contains(t, view, "success")
	require.Contains(t, view, "selected row")
	require.Contains(t, view, "mode system")
}

func TestPreview_ProgramQuits(t *testing.T) {
	m, _ := newTestModel(t)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestPreview_ColorPickerFlow(t *testing.T) {
	m, mgr := newTestModel(t)

	// Open the picker for the accent token
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	next, _ = next.(Model).Update(keyMsg("c"))
	pm := next.(Model)
	require.True(t, pm.pickerOpen)
	require.Contains(t, pm.View(), "palette")

	// Select the first palette swatch
	next, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	next, _ = next.(Model).Update(cmd())
	pm = next.(Model)
	require.False(t, pm.pickerOpen)

	picked := pm.manager.Current().Colors[theme.TokenAccent]
	require.Equal(t, colorpicker.PaletteSwatches[0].Hex, picked)
	require.NotSame(t, theme.Dark, mgr.Current())
}

func TestPreview_ColorPickerCancel(t *testing.T) {
	m, mgr := newTestModel(t)
	before := mgr.Current()

	next, _ := m.Update(keyMsg("c"))
	next, cmd := next.(Model).Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)

	next, _ = next.(Model).Update(cmd())
	require.False(t, next.(Model).pickerOpen)
	require.Same(t, before, mgr.Current())
}

func TestPreview_ViewReflectsToggle(t *testing.T) {
	m, _ := newTestModel(t)

	before := m.View()
	next, _ := m.Update(keyMsg("t"))
	after := next.(Model).View()

	require.NotEqual(t, before, after)
	require.Contains(t, after, "mode light")
}
