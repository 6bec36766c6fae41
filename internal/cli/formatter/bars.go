package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a horizontal count bar scaled against max, like
// "████░░░░ 12". A zero max renders an empty bar.
func RenderBar(count, max, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if max > 0 {
		filled = count * width / max
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("%s %d", style.Render(bar), count)
}

// FormatBaht renders a whole-baht amount with a thousands separator,
// like "฿4,990".
func FormatBaht(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + "฿" + strings.Join(parts, ",")
}

// FormatPercent renders a 0..1 rate as a whole percentage, like "42%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

// PadRight pads s with spaces to at least width display characters.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
