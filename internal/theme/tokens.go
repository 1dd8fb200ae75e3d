// Package theme provides the umbra design system: token tables, theme
// composition, and the mode controller that resolves light/dark appearance.
package theme

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys presets define and users can override in their config.
const (
	// Surfaces
	TokenBackground ColorToken = "background"
	TokenSurface    ColorToken = "surface"

	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Accent
	TokenAccent       ColorToken = "accent"
	TokenAccentStrong ColorToken = "accent.strong"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"
	TokenStatusInfo    ColorToken = "status.info"

	// Selection
	TokenSelectionIndicator  ColorToken = "selection.indicator"
	TokenSelectionBackground ColorToken = "selection.background"

	// Misc
	TokenLink ColorToken = "link"
)

// AllColorTokens returns all valid color tokens for validation.
func AllColorTokens() []ColorToken {
	return []ColorToken{
		// Surfaces
		TokenBackground,
		TokenSurface,

		// Text hierarchy
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,

		// Accent
		TokenAccent,
		TokenAccentStrong,

		// Borders
		TokenBorderDefault,
		TokenBorderFocus,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,
		TokenStatusInfo,

		// Selection
		TokenSelectionIndicator,
		TokenSelectionBackground,

		// Misc
		TokenLink,
	}
}
