// Package overlay provides utilities for rendering modal content
// on top of background views without clearing the screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the center of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
)

// Layout controls overlay placement within the viewport.
type Layout struct {
	// Width and Height are the total viewport dimensions.
	Width  int
	Height int
	// Position specifies where to place the overlay.
	Position Position
	// PadY adds vertical padding from edges for Top/Bottom positions.
	PadY int
}

// Compose renders foreground content on top of background.
// Uses ANSI-aware string manipulation so styling survives in both
// the foreground and the background content.
func Compose(layout Layout, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	// Pad background to full height
	for len(bgLines) < layout.Height {
		bgLines = append(bgLines, strings.Repeat(" ", layout.Width))
	}

	fgWidth := 0
	for _, line := range fgLines {
		if w := ansi.StringWidth(line); w > fgWidth {
			fgWidth = w
		}
	}

	startX, startY := layout.origin(fgWidth, len(fgLines))

	for i, fgLine := range fgLines {
		bgY := startY + i
		if bgY >= len(bgLines) {
			break
		}

		bgLine := bgLines[bgY]
		fgLineWidth := ansi.StringWidth(fgLine)

		// Left portion of background (ANSI-aware truncation)
		leftPart := ansi.Truncate(bgLine, startX, "")
		leftWidth := ansi.StringWidth(leftPart)
		if leftWidth < startX {
			leftPart += strings.Repeat(" ", startX-leftWidth)
		}

		// Right portion of background after the overlay
		endX := startX + fgLineWidth
		var rightPart string
		if endX < ansi.StringWidth(bgLine) {
			// TruncateLeft removes chars from the left, keeping the right
			rightPart = ansi.TruncateLeft(bgLine, endX, "")
		}

		bgLines[bgY] = leftPart + fgLine + rightPart
	}

	return strings.Join(bgLines, "\n")
}

// origin determines the x,y starting coordinates for the overlay.
func (l Layout) origin(fgWidth, fgHeight int) (x, y int) {
	switch l.Position {
	case Top:
		x = (l.Width - fgWidth) / 2
		y = l.PadY
	case Bottom:
		x = (l.Width - fgWidth) / 2
		y = l.Height - fgHeight - l.PadY
	default: // Center
		x = (l.Width - fgWidth) / 2
		y = (l.Height - fgHeight) / 2
	}

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
