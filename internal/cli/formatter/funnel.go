package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumicello/boothlog/internal/funnel"
)

// RenderFunnel draws the computed funnel geometry as rows of colored bars.
// The geometry is expected to have been laid out with a canvas width equal
// to the target column count, so node coordinates map directly to character
// cells.
func RenderFunnel(g funnel.Geometry) string {
	var b strings.Builder
	for rowIdx, row := range g.Rows {
		if len(row) == 0 {
			continue
		}
		b.WriteString(renderNodeRow(row, int(g.Width)))
		if rowIdx < len(g.Rows)-1 {
			b.WriteString(renderConnector(row, int(g.Width)))
		}
	}
	return b.String()
}

// renderNodeRow emits one bar line and one label line for a row of nodes.
func renderNodeRow(nodes []funnel.Node, width int) string {
	bars := make([]rune, width)
	for i := range bars {
		bars[i] = ' '
	}
	colors := make([]string, width)

	for _, n := range nodes {
		start, end := int(n.X), int(n.X+n.Width)
		if start < 0 {
			start = 0
		}
		if end > width {
			end = width
		}
		for i := start; i < end; i++ {
			bars[i] = '█'
			colors[i] = n.Color
		}
	}

	var bar strings.Builder
	i := 0
	for i < width {
		if bars[i] == ' ' {
			j := i
			for j < width && bars[j] == ' ' {
				j++
			}
			bar.WriteString(strings.Repeat(" ", j-i))
			i = j
			continue
		}
		color := colors[i]
		j := i
		for j < width && bars[j] == '█' && colors[j] == color {
			j++
		}
		bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", j-i)))
		i = j
	}

	labels := make([]rune, width)
	for i := range labels {
		labels[i] = ' '
	}
	for _, n := range nodes {
		text := fmt.Sprintf("%s %d", n.Label, n.Value)
		center := int(n.X + n.Width/2)
		start := center - len(text)/2
		if start < 0 {
			start = 0
		}
		for i, r := range text {
			if start+i >= width {
				break
			}
			labels[start+i] = r
		}
	}

	return bar.String() + "\n" + Dim(strings.TrimRight(string(labels), " ")) + "\n"
}

// renderConnector draws a sparse line of drop marks under each node so the
// eye can follow the flow between rows.
func renderConnector(nodes []funnel.Node, width int) string {
	marks := make([]rune, width)
	for i := range marks {
		marks[i] = ' '
	}
	for _, n := range nodes {
		center := int(n.X + n.Width/2)
		if center >= 0 && center < width {
			marks[center] = '│'
		}
	}
	return Dim(strings.TrimRight(string(marks), " ")) + "\n"
}
