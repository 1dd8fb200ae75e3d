package theme

// Preset is a named pair of color mappings, one per appearance variant.
// Every preset defines the identical set of tokens for both variants; the
// parity test in presets_test.go enforces this.
type Preset struct {
	Name        string
	Description string
	Light       map[ColorToken]string
	Dark        map[ColorToken]string
}

// Presets contains all built-in palette pairs.
var Presets = map[string]Preset{
	"default":    DefaultPreset,
	"catppuccin": CatppuccinPreset,
	"dracula":    DraculaPreset,
	"nord":       NordPreset,
}

// PresetNames returns the built-in preset names in display order.
func PresetNames() []string {
	return []string{"default", "catppuccin", "dracula", "nord"}
}

// DefaultPreset is the stock umbra color scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default umbra theme",
	Light: map[ColorToken]string{
		TokenBackground:          "#FAFAFA",
		TokenSurface:             "#F0F0F0",
		TokenTextPrimary:         "#333333",
		TokenTextSecondary:       "#555555",
		TokenTextMuted:           "#999999",
		TokenAccent:              "#874BFD",
		TokenAccentStrong:        "#5A2DD8",
		TokenBorderDefault:       "#D9DCCF",
		TokenBorderFocus:         "#54A0FF",
		TokenStatusSuccess:       "#43BF6D",
		TokenStatusWarning:       "#E3A000",
		TokenStatusError:         "#FF6B6B",
		TokenStatusInfo:          "#2F7BD9",
		TokenSelectionIndicator:  "#1A1A1A",
		TokenSelectionBackground: "#E0E0E0",
		TokenLink:                "#1E66F5",
	},
	Dark: map[ColorToken]string{
		TokenBackground:          "#1A1A1A",
		TokenSurface:             "#242424",
		TokenTextPrimary:         "#CCCCCC",
		TokenTextSecondary:       "#BBBBBB",
		TokenTextMuted:           "#696969",
		TokenAccent:              "#7D56F4",
		TokenAccentStrong:        "#9D7BFF",
		TokenBorderDefault:       "#696969",
		TokenBorderFocus:         "#FFFFFF",
		TokenStatusSuccess:       "#73F59F",
		TokenStatusWarning:       "#FECA57",
		TokenStatusError:         "#FF8787",
		TokenStatusInfo:          "#54A0FF",
		TokenSelectionIndicator:  "#FFFFFF",
		TokenSelectionBackground: "#2D3436",
		TokenLink:                "#54A0FF",
	},
}

// CatppuccinPreset pairs the Latte and Mocha flavors.
// Colors from: https://catppuccin.com/palette
var CatppuccinPreset = Preset{
	Name:        "catppuccin",
	Description: "Catppuccin Latte / Mocha - warm pastel palette",
	Light: map[ColorToken]string{
		TokenBackground:          "#EFF1F5", // base
		TokenSurface:             "#E6E9EF", // mantle
		TokenTextPrimary:         "#4C4F69", // text
		TokenTextSecondary:       "#5C5F77", // subtext1
		TokenTextMuted:           "#8C8FA1", // overlay1
		TokenAccent:              "#8839EF", // mauve
		TokenAccentStrong:        "#7287FD", // lavender
		TokenBorderDefault:       "#ACB0BE", // surface2
		TokenBorderFocus:         "#8839EF",
		TokenStatusSuccess:       "#40A02B", // green
		TokenStatusWarning:       "#DF8E1D", // yellow
		TokenStatusError:         "#D20F39", // red
		TokenStatusInfo:          "#1E66F5", // blue
		TokenSelectionIndicator:  "#8839EF",
		TokenSelectionBackground: "#BCC0CC", // surface1
		TokenLink:                "#1E66F5",
	},
	Dark: map[ColorToken]string{
		TokenBackground:          "#1E1E2E", // base
		TokenSurface:             "#181825", // mantle
		TokenTextPrimary:         "#CDD6F4", // text
		TokenTextSecondary:       "#BAC2DE", // subtext1
		TokenTextMuted:           "#7F849C", // overlay1
		TokenAccent:              "#CBA6F7", // mauve
		TokenAccentStrong:        "#B4BEFE", // lavender
		TokenBorderDefault:       "#585B70", // surface2
		TokenBorderFocus:         "#CBA6F7",
		TokenStatusSuccess:       "#A6E3A1", // green
		TokenStatusWarning:       "#F9E2AF", // yellow
		TokenStatusError:         "#F38BA8", // red
		TokenStatusInfo:          "#89B4FA", // blue
		TokenSelectionIndicator:  "#CBA6F7",
		TokenSelectionBackground: "#313244", // surface0
		TokenLink:                "#89B4FA",
	},
}

// DraculaPreset is the classic Dracula palette with a light counterpart.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Light: map[ColorToken]string{
		TokenBackground:          "#F8F8F2",
		TokenSurface:             "#E9E9E4",
		TokenTextPrimary:         "#282A36",
		TokenTextSecondary:       "#44475A",
		TokenTextMuted:           "#6272A4",
		TokenAccent:              "#644AC9",
		TokenAccentStrong:        "#A3144D",
		TokenBorderDefault:       "#999CA8",
		TokenBorderFocus:         "#644AC9",
		TokenStatusSuccess:       "#14710A",
		TokenStatusWarning:       "#846E15",
		TokenStatusError:         "#CB3A2A",
		TokenStatusInfo:          "#036A96",
		TokenSelectionIndicator:  "#A3144D",
		TokenSelectionBackground: "#CFCFDE",
		TokenLink:                "#036A96",
	},
	Dark: map[ColorToken]string{
		TokenBackground:          "#282A36",
		TokenSurface:             "#343746",
		TokenTextPrimary:         "#F8F8F2",
		TokenTextSecondary:       "#BFBFBF",
		TokenTextMuted:           "#6272A4",
		TokenAccent:              "#BD93F9",
		TokenAccentStrong:        "#FF79C6",
		TokenBorderDefault:       "#6272A4",
		TokenBorderFocus:         "#BD93F9",
		TokenStatusSuccess:       "#50FA7B",
		TokenStatusWarning:       "#F1FA8C",
		TokenStatusError:         "#FF5555",
		TokenStatusInfo:          "#8BE9FD",
		TokenSelectionIndicator:  "#FF79C6",
		TokenSelectionBackground: "#44475A",
		TokenLink:                "#8BE9FD",
	},
}

// NordPreset is the arctic, north-bluish palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Light: map[ColorToken]string{
		TokenBackground:          "#ECEFF4",
		TokenSurface:             "#E5E9F0",
		TokenTextPrimary:         "#2E3440",
		TokenTextSecondary:       "#3B4252",
		TokenTextMuted:           "#7B88A1",
		TokenAccent:              "#5E81AC",
		TokenAccentStrong:        "#81A1C1",
		TokenBorderDefault:       "#D8DEE9",
		TokenBorderFocus:         "#5E81AC",
		TokenStatusSuccess:       "#5E8C3E",
		TokenStatusWarning:       "#B58B33",
		TokenStatusError:         "#BF616A",
		TokenStatusInfo:          "#5E81AC",
		TokenSelectionIndicator:  "#5E81AC",
		TokenSelectionBackground: "#D8DEE9",
		TokenLink:                "#5E81AC",
	},
	Dark: map[ColorToken]string{
		TokenBackground:          "#2E3440",
		TokenSurface:             "#3B4252",
		TokenTextPrimary:         "#ECEFF4",
		TokenTextSecondary:       "#E5E9F0",
		TokenTextMuted:           "#616E88",
		TokenAccent:              "#88C0D0",
		TokenAccentStrong:        "#81A1C1",
		TokenBorderDefault:       "#4C566A",
		TokenBorderFocus:         "#88C0D0",
		TokenStatusSuccess:       "#A3BE8C",
		TokenStatusWarning:       "#EBCB8B",
		TokenStatusError:         "#BF616A",
		TokenStatusInfo:          "#5E81AC",
		TokenSelectionIndicator:  "#88C0D0",
		TokenSelectionBackground: "#434C5E",
		TokenLink:                "#81A1C1",
	},
}
