package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mom-planner/internal/model"
)

// Palette. The category colors follow the web cards: sky, emerald, amber.
var (
	ColorSky     = lipgloss.Color("#0ea5e9")
	ColorEmerald = lipgloss.Color("#10b981")
	ColorAmber   = lipgloss.Color("#f59e0b")
	ColorRed     = lipgloss.Color("#ef4444")
	ColorDim     = lipgloss.Color("#94a3b8")
	ColorFg      = lipgloss.Color("#e2e8f0")
	ColorHeader  = lipgloss.Color("#f472b6")
)

var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorEmerald)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorAmber)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleItalic = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
)

var namedColors = map[string]lipgloss.Color{
	"sky":     ColorSky,
	"emerald": ColorEmerald,
	"amber":   ColorAmber,
}

// CategoryColor maps a card color name to a terminal color.
func CategoryColor(name string) lipgloss.Color {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return ColorSky
}

// StatusStyle colors a status label.
func StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusCompleted:
		return StyleGreen
	case model.StatusInProgress:
		return StyleYellow
	default:
		return StyleDim
	}
}

// DueStyle colors a due badge.
func DueStyle(badge string) lipgloss.Style {
	switch {
	case badge == "Overdue":
		return StyleRed
	case badge == "Due today":
		return StyleYellow
	default:
		return StyleDim
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
