package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_Center(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA"
	fg := "XX\nXX"
	layout := Layout{Width: 5, Height: 3, Position: Center}

	result := Compose(layout, fg, bg)

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	// Rows 0 and 1 carry the overlay, centered at column 1
	assert.Equal(t, "AXXAA", lines[0])
	assert.Equal(t, "AXXAA", lines[1])
	assert.Equal(t, "AAAAA", lines[2])
}

func TestCompose_Top(t *testing.T) {
	bg := strings.Repeat("AAAAA\n", 4) + "AAAAA"
	fg := "XX"
	layout := Layout{Width: 5, Height: 5, Position: Top, PadY: 1}

	result := Compose(layout, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Equal(t, "AAAAA", lines[0])
	assert.Equal(t, "AXXAA", lines[1])
}

func TestCompose_Bottom(t *testing.T) {
	bg := strings.Repeat("AAAAA\n", 4) + "AAAAA"
	fg := "XX"
	layout := Layout{Width: 5, Height: 5, Position: Bottom, PadY: 1}

	result := Compose(layout, fg, bg)

	lines := strings.Split(result, "\n")
	assert.Equal(t, "AXXAA", lines[3])
	assert.Equal(t, "AAAAA", lines[4])
}

func TestCompose_PadsShortBackground(t *testing.T) {
	layout := Layout{Width: 4, Height: 4, Position: Center}

	result := Compose(layout, "XX", "AA")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, " XX ", lines[1])
}

func TestCompose_OverlayLargerThanViewport(t *testing.T) {
	bg := "AA\nAA"
	fg := "XXXX\nXXXX\nXXXX"
	layout := Layout{Width: 2, Height: 2, Position: Center}

	// Must not panic; overlay clamps to origin 0,0
	result := Compose(layout, fg, bg)
	lines := strings.Split(result, "\n")
	assert.Equal(t, "XXXX", lines[0])
}

func TestCompose_PreservesStyledBackground(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("AAAAAA")
	bg := styled + "\n" + styled + "\n" + styled
	fg := "XX"
	layout := Layout{Width: 6, Height: 3, Position: Center}

	result := Compose(layout, fg, bg)

	// The middle row contains the overlay, the others keep their styling
	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "XX")
	assert.Equal(t, styled, lines[0])
}
