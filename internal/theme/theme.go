package theme

import (
	"maps"

	"github.com/charmbracelet/lipgloss"
)

// Variant identifies which appearance a Theme was composed for.
type Variant string

const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"
)

// Theme is an immutable bundle of resolved design tokens for one appearance
// variant. The color mapping is variant-specific; the spacing, radius, border,
// and typography tables are shared by reference between both variants.
type Theme struct {
	Variant Variant
	Colors  map[ColorToken]string

	Spacing *SpacingScale
	Radius  *RadiusScale
	Borders *BorderSet
	Type    *TypeScale
}

// Compose merges a color mapping with the shared token tables into a Theme.
// The mapping is cloned so callers cannot mutate the composed theme afterward.
func Compose(variant Variant, colors map[ColorToken]string) *Theme {
	return &Theme{
		Variant: variant,
		Colors:  maps.Clone(colors),
		Spacing: Spacing,
		Radius:  Radius,
		Borders: Borders,
		Type:    Type,
	}
}

// Color returns the lipgloss color for a token. Unknown tokens render as the
// terminal default (empty color).
func (t *Theme) Color(token ColorToken) lipgloss.Color {
	return lipgloss.Color(t.Colors[token])
}

// Default light and dark themes, composed once at package load from the
// default preset. They are program-wide constants; Manager selects between
// them (or a preset-derived pair) at read time.
var (
	Light = Compose(VariantLight, DefaultPreset.Light)
	Dark  = Compose(VariantDark, DefaultPreset.Dark)
)
