package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var colorEnabled = true

// SetColorEnabled toggles ANSI styling globally; the binary disables it
// when stdout is not a terminal or --plain is given.
func SetColorEnabled(enabled bool) { colorEnabled = enabled }

func paint(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// StateStyle returns the style for a work-range state: green for success,
// yellow for input-shaped failures, red for errors.
func StateStyle(state domain.RangeState) lipgloss.Style {
	switch state {
	case domain.RangeSuccess:
		return StyleGreen
	case domain.RangeNoInput, domain.RangeRelationNoInput, domain.RangeNoChildren:
		return StyleYellow
	case domain.RangeLoading:
		return StyleDim
	default:
		return StyleRed
	}
}

// StateIndicator returns a colored marker such as "● ok" or "● loop".
func StateIndicator(state domain.RangeState) string {
	label := map[domain.RangeState]string{
		domain.RangeSuccess:         "ok",
		domain.RangeLoading:         "pending",
		domain.RangeNoInput:         "no input",
		domain.RangeSelfSelected:    "self",
		domain.RangeNoChildren:      "empty",
		domain.RangeRelationNoInput: "deps: no input",
		domain.RangeRelationError:   "deps: failed",
		domain.RangeRecursiveError:  "loop",
		domain.RangeUnknownError:    "error",
	}[state]
	if label == "" {
		label = string(state)
	}
	return paint(StateStyle(state), "● "+label)
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", paint(StyleHeader, upper), paint(StyleDim, line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return paint(StyleDim, text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return paint(StyleBold, text)
}
