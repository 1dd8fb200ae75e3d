// Package styles contains Lip Gloss style definitions derived from a theme.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dstaley/umbra/internal/theme"
)

// Styles holds the Lip Gloss styles for one theme variant. Build one per
// theme with New and swap the whole set when the active theme changes.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Caption  lipgloss.Style
	Muted    lipgloss.Style
	Link     lipgloss.Style

	Accent       lipgloss.Style
	AccentStrong lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Selection indicator style (used for ">" prefix in lists)
	SelectionIndicator lipgloss.Style
	SelectedRow        lipgloss.Style

	Panel        lipgloss.Style
	PanelFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	StatusBar lipgloss.Style
}

// New builds the style set for a theme.
func New(t *theme.Theme) Styles {
	ty := t.Type

	return Styles{
		Title: textStyle(ty.Title).
			Foreground(t.Color(theme.TokenTextPrimary)).
			Padding(0, theme.Spacing.XS),
		Subtitle: textStyle(ty.Subtitle).
			Foreground(t.Color(theme.TokenTextSecondary)),
		Body: textStyle(ty.Body).
			Foreground(t.Color(theme.TokenTextPrimary)),
		Caption: textStyle(ty.Caption).
			Foreground(t.Color(theme.TokenTextMuted)),
		Muted: lipgloss.NewStyle().
			Foreground(t.Color(theme.TokenTextMuted)),
		Link: textStyle(ty.Link).
			Foreground(t.Color(theme.TokenLink)),

		Accent: lipgloss.NewStyle().
			Foreground(t.Color(theme.TokenAccent)),
		AccentStrong: lipgloss.NewStyle().
			Foreground(t.Color(theme.TokenAccentStrong)).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(t.Color(theme.TokenStatusSuccess)),
		Warning: lipgloss.NewStyle().Foreground(t.Color(theme.TokenStatusWarning)),
		Error:   lipgloss.NewStyle().Foreground(t.Color(theme.TokenStatusError)).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(t.Color(theme.TokenStatusInfo)),

		SelectionIndicator: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Color(theme.TokenSelectionIndicator)),
		SelectedRow: lipgloss.NewStyle().
			Foreground(t.Color(theme.TokenTextPrimary)).
			Background(t.Color(theme.TokenSelectionBackground)),

		Panel: lipgloss.NewStyle().
			Border(t.Borders.Rounded).
			BorderForeground(t.Color(theme.TokenBorderDefault)).
			Padding(0, theme.Spacing.XS),
		PanelFocused: lipgloss.NewStyle().
			Border(t.Borders.Thick).
			BorderForeground(t.Color(theme.TokenBorderFocus)).
			Padding(0, theme.Spacing.XS),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Color(theme.TokenAccent)),
		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Color(theme.TokenTextMuted)),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.Color(theme.TokenTextSecondary)).
			Padding(0, theme.Spacing.XS),
	}
}

// textStyle converts a typography entry into a base Lip Gloss style.
func textStyle(ts theme.TextStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(ts.Bold).
		Italic(ts.Italic).
		Faint(ts.Faint).
		Underline(ts.Underline)
}
