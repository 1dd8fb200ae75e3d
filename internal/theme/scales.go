package theme

import (
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
)

// SpacingScale defines the spacing steps in terminal cells.
// Use these for consistent padding, margins, and gaps.
type SpacingScale struct {
	None int
	XS   int
	SM   int
	MD   int
	LG   int
	XL   int
}

// RadiusScale defines corner sizing presets for bordered boxes.
// Terminal corners are a single cell; these sizes feed padding around
// rounded borders rather than literal radii.
type RadiusScale struct {
	None int
	SM   int
	MD   int
	LG   int
}

// BorderSet holds the border glyphs shared by both theme variants.
// The set is chosen once at package load based on the host terminal
// (see borderSetForHost); it never changes at runtime.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TextStyle describes a typography emphasis spec, the terminal analog of a
// type scale entry. Styles consume these via lipgloss.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Faint     bool
	Underline bool
}

// TypeScale defines the typography roles shared by both theme variants.
type TypeScale struct {
	Title    TextStyle
	Subtitle TextStyle
	Body     TextStyle
	Caption  TextStyle
	Code     TextStyle
	Link     TextStyle
}

// Mode-independent token tables. Both theme variants reference these same
// values; Compose never copies them.
var (
	Spacing = &SpacingScale{None: 0, XS: 1, SM: 2, MD: 4, LG: 6, XL: 8}

	Radius = &RadiusScale{None: 0, SM: 1, MD: 2, LG: 4}

	Borders = borderSetForHost()

	Type = &TypeScale{
		Title:    TextStyle{Bold: true},
		Subtitle: TextStyle{Bold: true, Faint: true},
		Body:     TextStyle{},
		Caption:  TextStyle{Faint: true},
		Code:     TextStyle{Italic: true},
		Link:     TextStyle{Underline: true},
	}
)

// borderSetForHost picks border glyphs for the host terminal. Legacy Windows
// consoles and dumb terminals get plain ASCII; everything else gets the
// Unicode box-drawing set. Evaluated once at package load.
func borderSetForHost() *BorderSet {
	if runtime.GOOS == "windows" && os.Getenv("WT_SESSION") == "" {
		return asciiBorders()
	}
	switch os.Getenv("TERM") {
	case "dumb", "linux":
		return asciiBorders()
	}
	return &BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
}

func asciiBorders() *BorderSet {
	ascii := lipgloss.Border{
		Top: "-", Bottom: "-", Left: "|", Right: "|",
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	}
	return &BorderSet{Normal: ascii, Rounded: ascii, Thick: ascii}
}
