package formatter

import (
	"strings"
	"testing"

	"github.com/lumicello/boothlog/internal/funnel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termFunnelConfig(cols float64) funnel.Config {
	cfg := funnel.DefaultConfig()
	cfg.MaxWidth = cols
	cfg.MinWidth = 4
	cfg.NodeGap = 2
	cfg.Row1Y = 0
	cfg.RowGap = 3
	cfg.NodeHeight = 1
	return cfg
}

func TestRenderFunnel_LabelsAndValues(t *testing.T) {
	m := funnel.Metrics{
		TotalPaused:  10,
		NotEngaged:   4,
		EngagedCount: 6,
		OutcomeCounts: map[funnel.Outcome]int{
			funnel.OutcomeNoSale: 3,
			funnel.OutcomeSingle: 3,
		},
	}
	g := funnel.Layout(m, 64, 9, termFunnelConfig(64))
	out := RenderFunnel(g)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "All Paused 10")
	assert.Contains(t, out, "Engaged 6")
	assert.Contains(t, out, "No Sale 3")
	assert.Contains(t, out, "Single 3")
	// Zero-count outcomes are omitted from the layout, so they never render.
	assert.NotContains(t, out, "Bundle 3")
	assert.NotContains(t, out, "Full Year")
}

func TestRenderFunnel_AllZeroStillRenders(t *testing.T) {
	g := funnel.Layout(funnel.Metrics{}, 48, 9, termFunnelConfig(48))
	out := RenderFunnel(g)

	assert.Contains(t, out, "All Paused 0")
	assert.Contains(t, out, "Engaged 0")
}

func TestRenderFunnel_LinesFitCanvasWidth(t *testing.T) {
	m := funnel.Metrics{
		TotalPaused:  20,
		NotEngaged:   8,
		EngagedCount: 12,
		OutcomeCounts: map[funnel.Outcome]int{
			funnel.OutcomeNoSale:   5,
			funnel.OutcomeSingle:   4,
			funnel.OutcomeBundle3:  2,
			funnel.OutcomeFullYear: 1,
		},
	}
	const cols = 60
	g := funnel.Layout(m, cols, 9, termFunnelConfig(cols))
	out := RenderFunnel(g)

	for _, line := range strings.Split(out, "\n") {
		plain := stripANSI(line)
		assert.LessOrEqual(t, len([]rune(plain)), cols, "line overflows canvas: %q", plain)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
