package theme

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Build composes a light/dark theme pair from a preset with optional
// per-token color overrides. Order of application:
//  1. Start with the default preset
//  2. Layer the named preset (if any)
//  3. Layer individual overrides (applied to both variants)
//
// An unknown preset name, unknown token, or unparseable color is an error.
func Build(preset string, overrides map[string]string) (light, dark *Theme, err error) {
	lightColors := maps.Clone(DefaultPreset.Light)
	darkColors := maps.Clone(DefaultPreset.Dark)

	if preset != "" && preset != "default" {
		p, ok := Presets[preset]
		if !ok {
			return nil, nil, fmt.Errorf("unknown theme preset: %s", preset)
		}
		maps.Copy(lightColors, p.Light)
		maps.Copy(darkColors, p.Dark)
	}

	for key, value := range overrides {
		token := ColorToken(key)
		if !isValidToken(token) {
			return nil, nil, fmt.Errorf("unknown color token: %s", key)
		}
		if _, err := colorful.Hex(value); err != nil {
			return nil, nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		lightColors[token] = value
		darkColors[token] = value
	}

	return Compose(VariantLight, lightColors), Compose(VariantDark, darkColors), nil
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllColorTokens(), token)
}
