// Package colorpicker provides a visual color selection component for
// theme token overrides.
package colorpicker

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dstaley/umbra/internal/theme"
	"github.com/dstaley/umbra/internal/ui/overlay"
	"github.com/dstaley/umbra/internal/ui/styles"
)

// Swatch represents a named color option.
type Swatch struct {
	Name string
	Hex  string // e.g., "#FF8787"
}

// PaletteSwatches is a curated palette of accent-friendly colors.
var PaletteSwatches = []Swatch{
	{Name: "Red", Hex: "#FF8787"},
	{Name: "Green", Hex: "#73F59F"},
	{Name: "Blue", Hex: "#54A0FF"},
	{Name: "Purple", Hex: "#7D56F4"},
	{Name: "Yellow", Hex: "#FECA57"},
	{Name: "Orange", Hex: "#FF9F43"},
	{Name: "Teal", Hex: "#89DCEB"},
	{Name: "Pink", Hex: "#CBA6F7"},
	{Name: "Coral", Hex: "#FF6B6B"},
	{Name: "Gray", Hex: "#BBBBBB"},
}

// GrayscaleSwatches provides grayscale options.
var GrayscaleSwatches = []Swatch{
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Gray 1", Hex: "#E5E5E5"},
	{Name: "Gray 2", Hex: "#CCCCCC"},
	{Name: "Gray 3", Hex: "#999999"},
	{Name: "Gray 4", Hex: "#808080"},
	{Name: "Gray 5", Hex: "#666666"},
	{Name: "Gray 6", Hex: "#4D4D4D"},
	{Name: "Gray 7", Hex: "#333333"},
	{Name: "Black", Hex: "#000000"},
}

// presetSwatches collects each built-in preset's value for token, so the
// picker offers "what would this token look like under dracula" options.
func presetSwatches(token theme.ColorToken, variant theme.Variant) []Swatch {
	var out []Swatch
	seen := make(map[string]bool)
	for _, name := range theme.PresetNames() {
		p := theme.Presets[name]
		colors := p.Dark
		if variant == theme.VariantLight {
			colors = p.Light
		}
		hex, ok := colors[token]
		if !ok || seen[strings.ToUpper(hex)] {
			continue
		}
		seen[strings.ToUpper(hex)] = true
		out = append(out, Swatch{Name: name, Hex: hex})
	}
	return out
}

// Custom mode focus fields.
const (
	customFocusInput = iota
	customFocusSave
	customFocusCancel
)

// Model holds the color picker state.
type Model struct {
	token   theme.ColorToken
	columns [][]Swatch
	headers []string

	column   int // Current column
	selected int // Selected row within current column

	customInput     textinput.Model
	inCustomMode    bool
	customFocus     int
	showCustomError bool

	viewportWidth  int
	viewportHeight int
	boxWidth       int
}

// SelectMsg is sent when a color is selected.
type SelectMsg struct {
	Token theme.ColorToken
	Hex   string
}

// CancelMsg is sent when the picker is cancelled.
type CancelMsg struct{}

// New creates a color picker for one theme token. The middle column shows
// how each built-in preset colors that token for the given variant.
func New(token theme.ColorToken, variant theme.Variant) Model {
	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Width = 10
	ti.Prompt = ""

	return Model{
		token: token,
		columns: [][]Swatch{
			PaletteSwatches,
			presetSwatches(token, variant),
			GrayscaleSwatches,
		},
		headers:     []string{"palette", "presets", "grayscale"},
		customInput: ti,
		boxWidth:    56,
	}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.viewportWidth = width
	m.viewportHeight = height
	return m
}

// SetSelected finds and selects the swatch matching the given hex value.
// Also resets to swatch selection mode (exits custom mode if active).
// If the color is not found, defaults to the first selection.
func (m Model) SetSelected(hex string) Model {
	m.inCustomMode = false
	m.customFocus = customFocusInput
	m.showCustomError = false
	m.customInput.Blur()

	for col, swatches := range m.columns {
		for row, swatch := range swatches {
			if strings.EqualFold(swatch.Hex, hex) {
				m.column = col
				m.selected = row
				return m
			}
		}
	}
	m.column = 0
	m.selected = 0
	return m
}

// Token returns the token this picker edits.
func (m Model) Token() theme.ColorToken {
	return m.token
}

// Selected returns the currently selected swatch.
func (m Model) Selected() Swatch {
	if m.column >= 0 && m.column < len(m.columns) {
		swatches := m.columns[m.column]
		if m.selected >= 0 && m.selected < len(swatches) {
			return swatches[m.selected]
		}
	}
	return Swatch{}
}

// InCustomMode returns whether the picker is in custom hex entry mode.
func (m Model) InCustomMode() bool {
	return m.inCustomMode
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.inCustomMode {
		return m.updateCustomMode(msg)
	}
	return m.updateNormalMode(msg)
}

func (m Model) updateNormalMode(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		currentColumn := m.columns[m.column]
		switch msg.String() {
		case "j", "down", "ctrl+n":
			if m.selected < len(currentColumn)-1 {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
		case "h", "left":
			if m.column > 0 {
				m.column--
				m.clampSelected()
			}
		case "l", "right":
			if m.column < len(m.columns)-1 {
				m.column++
				m.clampSelected()
			}
		case "enter":
			if len(currentColumn) > 0 {
				return m, m.selectCmd(currentColumn[m.selected].Hex)
			}
		case "esc":
			return m, cancelCmd()
		case "c":
			m.inCustomMode = true
			m.customInput.SetValue("")
			m.customInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// clampSelected keeps the row index within the active column's bounds.
func (m *Model) clampSelected() {
	column := m.columns[m.column]
	if m.selected >= len(column) {
		m.selected = len(column) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) updateCustomMode(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			switch m.customFocus {
			case customFocusInput:
				// Move to save button on enter from input
				m.customFocus = customFocusSave
				m.customInput.Blur()
				return m, nil
			case customFocusSave:
				hex := m.customInput.Value()
				if isValidHex(hex) {
					return m, m.selectCmd(hex)
				}
				m.showCustomError = true
				return m, nil
			case customFocusCancel:
				m.inCustomMode = false
				m.customFocus = customFocusInput
				m.showCustomError = false
				return m, nil
			}
		case "esc":
			m.inCustomMode = false
			m.customFocus = customFocusInput
			m.showCustomError = false
			m.customInput.Blur()
			return m, nil
		case "tab", "down", "ctrl+n":
			if m.customFocus < customFocusCancel {
				m.customFocus++
				m.customInput.Blur()
			} else {
				m.customFocus = customFocusInput
				m.customInput.Focus()
				return m, textinput.Blink
			}
			return m, nil
		case "shift+tab", "up", "ctrl+p":
			if m.customFocus > customFocusInput {
				m.customFocus--
				if m.customFocus == customFocusInput {
					m.customInput.Focus()
					return m, textinput.Blink
				}
			} else {
				m.customFocus = customFocusCancel
				m.customInput.Blur()
			}
			return m, nil
		case "h", "left":
			if m.customFocus == customFocusCancel {
				m.customFocus = customFocusSave
			}
			return m, nil
		case "l", "right":
			if m.customFocus == customFocusSave {
				m.customFocus = customFocusCancel
			}
			return m, nil
		}
	}

	// Only update text input when focused on it
	if m.customFocus == customFocusInput {
		var cmd tea.Cmd
		m.customInput, cmd = m.customInput.Update(msg)
		// Clear error when valid hex is typed
		if m.showCustomError && isValidHex(m.customInput.Value()) {
			m.showCustomError = false
		}
		return m, cmd
	}
	return m, nil
}

// View renders the picker box using the given theme.
func (m Model) View(t *theme.Theme) string {
	s := styles.New(t)

	width := m.boxWidth
	if width == 0 {
		width = 30
	}

	var content strings.Builder

	if m.inCustomMode {
		content.WriteString(s.Title.Render("Custom " + string(m.token)))
		content.WriteString("\n")

		hex := m.customInput.Value()
		inputLine := m.customInput.View()
		if isValidHex(hex) {
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(hex)).
				Render("    ")
			inputLine = inputLine + "  " + swatch
		}
		content.WriteString(" " + inputLine)
		content.WriteString("\n")

		// Error message (only shown after clicking Save with invalid hex)
		if m.showCustomError {
			content.WriteString(s.Error.Render(" Invalid hex format"))
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(" " + m.renderButton(t, "Save", m.customFocus == customFocusSave))
		content.WriteString("  ")
		content.WriteString(m.renderButton(t, "Cancel", m.customFocus == customFocusCancel))
	} else {
		content.WriteString(s.Title.Render(string(m.token)))
		content.WriteString("\n")

		maxRows := 0
		for _, col := range m.columns {
			if len(col) > maxRows {
				maxRows = len(col)
			}
		}

		columnWidth := 16
		var columnViews []string
		for colIdx, swatches := range m.columns {
			var colContent strings.Builder
			colContent.WriteString(s.Caption.Render(" " + m.headers[colIdx]))
			colContent.WriteString("\n")

			isActiveColumn := colIdx == m.column
			for rowIdx := 0; rowIdx < maxRows; rowIdx++ {
				if rowIdx < len(swatches) {
					swatch := swatches[rowIdx]
					block := lipgloss.NewStyle().
						Background(lipgloss.Color(swatch.Hex)).
						Render("  ")

					var line string
					if isActiveColumn && rowIdx == m.selected {
						line = s.SelectionIndicator.Render(">") + block + " " + swatch.Name
					} else {
						line = " " + block + " " + swatch.Name
					}
					colContent.WriteString(lipgloss.NewStyle().Width(columnWidth).Render(line))
				} else {
					// Empty row to maintain alignment
					colContent.WriteString(strings.Repeat(" ", columnWidth))
				}
				colContent.WriteString("\n")
			}
			columnViews = append(columnViews, colContent.String())
		}

		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columnViews...))
		content.WriteString("\n")
		content.WriteString(s.Muted.Render(" 'c' custom  h/l column  enter select"))
	}

	boxStyle := lipgloss.NewStyle().
		Border(t.Borders.Rounded).
		BorderForeground(t.Color(theme.TokenBorderFocus)).
		Width(width)

	return boxStyle.Render(content.String())
}

// renderButton renders a focusable button.
func (m Model) renderButton(t *theme.Theme, label string, focused bool) string {
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true).
		Foreground(t.Color(theme.TokenBackground)).
		Background(t.Color(theme.TokenAccent))
	if focused {
		style = style.
			Background(t.Color(theme.TokenAccentStrong)).
			Underline(true).
			UnderlineSpaces(true)
	}
	return style.Render(label)
}

// Overlay renders the picker on top of a background view.
func (m Model) Overlay(t *theme.Theme, background string) string {
	pickerBox := m.View(t)

	if background == "" {
		return lipgloss.Place(
			m.viewportWidth, m.viewportHeight,
			lipgloss.Center, lipgloss.Center,
			pickerBox,
		)
	}

	return overlay.Compose(overlay.Layout{
		Width:    m.viewportWidth,
		Height:   m.viewportHeight,
		Position: overlay.Center,
	}, pickerBox, background)
}

// selectCmd returns a command that sends a SelectMsg.
func (m Model) selectCmd(hex string) tea.Cmd {
	token := m.token
	return func() tea.Msg {
		return SelectMsg{Token: token, Hex: hex}
	}
}

// cancelCmd returns a command that sends a CancelMsg.
func cancelCmd() tea.Cmd {
	return func() tea.Msg {
		return CancelMsg{}
	}
}

// isValidHex checks if a string is a valid hex color.
func isValidHex(s string) bool {
	matched, _ := regexp.MatchString(`^#[0-9A-Fa-f]{6}$`, s)
	return matched
}
