// Package appearance reports the host terminal's light/dark scheme and
// notifies subscribers when it changes.
package appearance

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Scheme is the terminal's reported appearance.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// DetectFunc reports the current terminal scheme.
type DetectFunc func() Scheme

// Detect resolves the terminal scheme from the UMBRA_APPEARANCE environment
// variable when set, otherwise from the terminal's background color query.
func Detect() Scheme {
	if env := os.Getenv("UMBRA_APPEARANCE"); env != "" {
		switch strings.ToLower(env) {
		case "light":
			return SchemeLight
		case "dark":
			return SchemeDark
		}
	}

	if lipgloss.HasDarkBackground() {
		return SchemeDark
	}
	return SchemeLight
}
