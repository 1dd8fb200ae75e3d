// Package styles contains Lip Gloss style definitions derived from a theme.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dstaley/umbra/internal/theme"
)

// RenderTitledPanel renders content inside a bordered panel with the title
// embedded in the top border, lazygit style: ╭─ Title ─────╮
// The border characters come from the theme's border set so the output
// degrades to ASCII on hosts without box-drawing support.
func (s Styles) RenderTitledPanel(t *theme.Theme, content, title string, width, height int, focused bool) string {
	border := t.Borders.Rounded
	borderStyle := lipgloss.NewStyle().Foreground(t.Color(theme.TokenBorderDefault))
	titleStyle := lipgloss.NewStyle().Foreground(t.Color(theme.TokenTextSecondary))
	if focused {
		border = t.Borders.Thick
		borderStyle = lipgloss.NewStyle().Foreground(t.Color(theme.TokenBorderFocus))
		titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Color(theme.TokenBorderFocus))
	}

	// Inner width excludes the two border columns
	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	topBorder := buildTopBorder(border, title, innerWidth, borderStyle, titleStyle)
	bottomBorder := borderStyle.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerWidth) + border.BottomRight)

	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Use lipgloss to constrain content width (handles wrapping/truncation properly)
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Height(contentHeight)
	constrainedContent := contentStyle.Render(content)

	contentLines := strings.Split(constrainedContent, "\n")
	paddedLines := make([]string, contentHeight)

	for i := 0; i < contentHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}

		// Pad line to innerWidth to ensure the right border aligns
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line = line + strings.Repeat(" ", innerWidth-lineWidth)
		}

		paddedLines[i] = borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	result.WriteString(strings.Join(paddedLines, "\n"))
	result.WriteString("\n")
	result.WriteString(bottomBorder)

	return result.String()
}

// buildTopBorder creates the top border with embedded title.
// borderStyle is used for border characters, titleStyle for the title text.
func buildTopBorder(border lipgloss.Border, title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(border.TopLeft + border.TopRight)
	}

	if title == "" {
		return borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, innerWidth) + border.TopRight)
	}

	// Need at least "─ " before and " ─" after the title
	if innerWidth < 4 {
		return borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, innerWidth) + border.TopRight)
	}

	availableForTitle := innerWidth - 4
	displayTitle := title
	if lipgloss.Width(displayTitle) > availableForTitle {
		displayTitle = TruncateString(displayTitle, availableForTitle)
	}

	// Inner: "─ " (2) + title + " " (1) + dashes = innerWidth
	titleTextWidth := lipgloss.Width(displayTitle)
	remainingWidth := innerWidth - 3 - titleTextWidth
	if remainingWidth < 0 {
		remainingWidth = 0
	}

	return borderStyle.Render(border.TopLeft+border.Top+" ") +
		titleStyle.Render(displayTitle) +
		borderStyle.Render(" "+strings.Repeat(border.Top, remainingWidth)+border.TopRight)
}
