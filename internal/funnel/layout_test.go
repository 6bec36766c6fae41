package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCanvasW = 400
	testCanvasH = 320
)

func TestLayout_Deterministic(t *testing.T) {
	m := Metrics{
		TotalPaused:  120,
		NotEngaged:   70,
		EngagedCount: 50,
		OutcomeCounts: map[Outcome]int{
			OutcomeNoSale:   25,
			OutcomeSingle:   15,
			OutcomeBundle3:  7,
			OutcomeFullYear: 3,
		},
	}
	cfg := DefaultConfig()

	first := Layout(m, testCanvasW, testCanvasH, cfg)
	second := Layout(m, testCanvasW, testCanvasH, cfg)
	assert.Equal(t, first, second, "identical input must yield identical geometry")
}

func TestLayout_AllZeroMetrics(t *testing.T) {
	m := Metrics{OutcomeCounts: map[Outcome]int{}}
	cfg := DefaultConfig()

	g := Layout(m, testCanvasW, testCanvasH, cfg)

	// Row 1 and 2 nodes are never filtered; the split nodes sit at the floor.
	require.Len(t, g.Rows[0], 1)
	require.Len(t, g.Rows[1], 2)
	assert.Equal(t, cfg.MinWidth, g.Rows[1][0].Width)
	assert.Equal(t, cfg.MinWidth, g.Rows[1][1].Width)

	// No outcomes: empty third row, only the two split ribbons remain.
	assert.Empty(t, g.Rows[2])
	assert.Len(t, g.Ribbons, 2)
}

func TestLayout_ProportionalWidthsAndRibbonCount(t *testing.T) {
	m := Metrics{
		TotalPaused:  100,
		NotEngaged:   60,
		EngagedCount: 40,
		OutcomeCounts: map[Outcome]int{
			OutcomeNoSale: 30,
			OutcomeSingle: 10,
		},
	}
	cfg := DefaultConfig()

	g := Layout(m, testCanvasW, testCanvasH, cfg)

	// Row 2 widths in 60:40 ratio (both well above the floor here).
	notEngaged, engaged := g.Rows[1][0], g.Rows[1][1]
	assert.InDelta(t, 60.0/40.0, notEngaged.Width/engaged.Width, 1e-9)

	// Exactly the two positive outcomes, in 30:10 ratio.
	require.Len(t, g.Rows[2], 2)
	assert.Equal(t, "no_sale", g.Rows[2][0].ID)
	assert.Equal(t, "single", g.Rows[2][1].ID)
	assert.InDelta(t, 3.0, g.Rows[2][0].Width/g.Rows[2][1].Width, 1e-9)

	// 2 split ribbons + 2 outcome ribbons.
	assert.Len(t, g.Ribbons, 4)
}

func TestLayout_ZeroCountOutcomesOmitted(t *testing.T) {
	m := Metrics{
		TotalPaused:  10,
		NotEngaged:   5,
		EngagedCount: 5,
		OutcomeCounts: map[Outcome]int{
			OutcomeNoSale:   0,
			OutcomeSingle:   5,
			OutcomeBundle3:  0,
			OutcomeFullYear: 0,
		},
	}
	g := Layout(m, testCanvasW, testCanvasH, DefaultConfig())

	require.Len(t, g.Rows[2], 1)
	assert.Equal(t, "single", g.Rows[2][0].ID)
	assert.Len(t, g.Ribbons, 3)
}

func TestLayout_RowsCentered(t *testing.T) {
	m := Metrics{
		TotalPaused:  100,
		NotEngaged:   50,
		EngagedCount: 50,
		OutcomeCounts: map[Outcome]int{
			OutcomeNoSale: 25,
			OutcomeSingle: 25,
		},
	}
	cfg := DefaultConfig()
	g := Layout(m, testCanvasW, testCanvasH, cfg)

	// Source node centered.
	src := g.Rows[0][0]
	assert.InDelta(t, testCanvasW/2.0, src.X+src.Width/2, 1e-9)

	// Split pair centered as a unit.
	left, right := g.Rows[1][0], g.Rows[1][1]
	assert.InDelta(t, testCanvasW/2.0, (left.X+right.X+right.Width)/2, 1e-9)

	// Equal shares produce equal widths.
	assert.InDelta(t, left.Width, right.Width, 1e-9)
}

func TestLayout_MinimumWidthFloor(t *testing.T) {
	// One engagement out of a thousand: the proportional width collapses
	// below the floor and must be clamped up.
	m := Metrics{
		TotalPaused:  1000,
		NotEngaged:   999,
		EngagedCount: 1,
		OutcomeCounts: map[Outcome]int{
			OutcomeSingle: 1,
		},
	}
	cfg := DefaultConfig()
	g := Layout(m, testCanvasW, testCanvasH, cfg)

	assert.Equal(t, cfg.MinWidth, g.Rows[1][1].Width)
	assert.Equal(t, cfg.MinWidth, g.Rows[2][0].Width)
}

func TestLayout_OutcomeRibbonsAccumulateWithoutCrossing(t *testing.T) {
	m := Metrics{
		TotalPaused:  100,
		NotEngaged:   40,
		EngagedCount: 60,
		OutcomeCounts: map[Outcome]int{
			OutcomeNoSale:   20,
			OutcomeSingle:   20,
			OutcomeBundle3:  10,
			OutcomeFullYear: 10,
		},
	}
	g := Layout(m, testCanvasW, testCanvasH, DefaultConfig())

	require.Len(t, g.Ribbons, 6)

	// Outcome ribbons keep the same left-to-right order as their targets.
	outcomeRibbons := g.Ribbons[2:]
	for i, r := range outcomeRibbons {
		assert.Equal(t, "engaged", r.SourceID)
		assert.Equal(t, g.Rows[2][i].ID, r.TargetID)
	}
}

func TestLayout_RowYOffsets(t *testing.T) {
	cfg := DefaultConfig()
	g := Layout(Metrics{TotalPaused: 1, EngagedCount: 1}, testCanvasW, testCanvasH, cfg)

	assert.Equal(t, cfg.Row1Y, g.Rows[0][0].Y)
	assert.Equal(t, cfg.Row1Y+cfg.RowGap, g.Rows[1][0].Y)
}
