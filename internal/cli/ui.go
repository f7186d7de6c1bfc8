package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// Key-Value Output
// =============================================================================

var styleKey = lipgloss.NewStyle().Foreground(colorGray).Width(12)

// keyValue formats a labeled value.
func keyValue(key, value string) string {
	return styleKey.Render(key) + " " + StyleValue.Render(value)
}

// =============================================================================
// Summary Display
// =============================================================================

// printSummary prints a result count and the cache backend on a single line.
func printSummary(count int, noun, backend string) {
	status := iconFresh
	statusStyle := styleComputed
	if backend != backendNone {
		status = backend + " " + iconCached
		statusStyle = styleCached
	}

	line := "  " + StyleDim.Render(fmt.Sprintf("%d %s", count, noun))
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Println(line)
}

// =============================================================================
// Creature Display
// =============================================================================

// typeColors follows the usual in-game palette, mapped to 256-color codes.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("144"),
	"fire":     lipgloss.Color("208"),
	"water":    lipgloss.Color("69"),
	"electric": lipgloss.Color("220"),
	"grass":    lipgloss.Color("77"),
	"ice":      lipgloss.Color("116"),
	"fighting": lipgloss.Color("160"),
	"poison":   lipgloss.Color("133"),
	"ground":   lipgloss.Color("179"),
	"flying":   lipgloss.Color("141"),
	"psychic":  lipgloss.Color("205"),
	"bug":      lipgloss.Color("142"),
	"rock":     lipgloss.Color("136"),
	"ghost":    lipgloss.Color("97"),
	"dragon":   lipgloss.Color("99"),
	"dark":     lipgloss.Color("95"),
	"steel":    lipgloss.Color("146"),
	"fairy":    lipgloss.Color("218"),
}

// typeBadge renders a type name in its color. Unknown types render dim.
func typeBadge(name string) string {
	color, ok := typeColors[name]
	if !ok {
		return StyleDim.Render(name)
	}
	return lipgloss.NewStyle().Foreground(color).Render(name)
}

// typeBadges renders the types of a creature, in slot order.
func typeBadges(types []pokedex.TypeSlot) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = typeBadge(t.TypeName)
	}
	return strings.Join(parts, " ")
}

// statBar renders pct (0-100) as a bar of width cells.
func statBar(pct, width int) string {
	pct = min(max(pct, 0), 100)
	filled := pct * width / 100
	if pct > 0 && filled == 0 {
		filled = 1
	}

	color := colorRed
	switch {
	case pct >= 40:
		color = colorGreen
	case pct >= 20:
		color = colorYellow
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	return bar + StyleDim.Render(strings.Repeat("░", width-filled))
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
