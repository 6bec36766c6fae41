package funnel

import "fmt"

// Config holds the geometry constants and palette for the diagram. Keeping
// these explicit makes the layout independent of any one rendering surface.
type Config struct {
	Row1Y      float64 // y offset of the first node row
	RowGap     float64 // vertical distance between consecutive rows
	NodeHeight float64 // node thickness, identical for every node
	MaxWidth   float64 // width of the row-1 source node
	MinWidth   float64 // floor for proportional node widths
	NodeGap    float64 // horizontal gap between sibling nodes

	NodeColors    map[string]string // node id -> fill color
	RibbonOpacity float64
}

// DefaultConfig returns the geometry and palette used by the stats screen.
func DefaultConfig() Config {
	return Config{
		Row1Y:      40,
		RowGap:     110,
		NodeHeight: 28,
		MaxWidth:   320,
		MinWidth:   24,
		NodeGap:    16,
		NodeColors: map[string]string{
			"all_paused":  "#83a598",
			"not_engaged": "#928374",
			"engaged":     "#8ec07c",
			"no_sale":     "#fb4934",
			"single":      "#fabd2f",
			"bundle_3":    "#fe8019",
			"full_year":   "#d3869b",
		},
		RibbonOpacity: 0.35,
	}
}

// Node is one positioned rectangle of the diagram.
type Node struct {
	ID     string
	Label  string
	Value  int
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
}

// Ribbon is one flared connector between a source sub-span and the full
// span of a destination node. Path is a closed cubic-curve outline in the
// same coordinate space as the nodes.
type Ribbon struct {
	SourceID string
	TargetID string
	Value    int
	Color    string
	Opacity  float64
	Path     string
}

// Geometry is the derived drawable output, recomputed on every metrics
// change.
type Geometry struct {
	Width   float64
	Height  float64
	Rows    [3][]Node
	Ribbons []Ribbon
}

var nodeLabels = map[string]string{
	"all_paused":  "All Paused",
	"not_engaged": "Left w/o Engage",
	"engaged":     "Engaged",
	"no_sale":     "No Sale",
	"single":      "Single",
	"bundle_3":    "Bundle 3",
	"full_year":   "Full Year",
}

// Layout computes node geometry and ribbon paths for the given snapshot,
// normalized into a canvasWidth × canvasHeight coordinate space. It is
// deterministic, side-effect free, and never fails: zero denominators are
// treated as 1 and zero-count outcome nodes are omitted rather than drawn
// empty.
func Layout(m Metrics, canvasWidth, canvasHeight float64, cfg Config) Geometry {
	g := Geometry{Width: canvasWidth, Height: canvasHeight}

	maxWidth := cfg.MaxWidth
	if maxWidth > canvasWidth {
		maxWidth = canvasWidth
	}

	row1Y := cfg.Row1Y
	row2Y := cfg.Row1Y + cfg.RowGap
	row3Y := cfg.Row1Y + 2*cfg.RowGap

	// Row 1: single source node at fixed width, centered.
	source := Node{
		ID:     "all_paused",
		Label:  nodeLabels["all_paused"],
		Value:  m.TotalPaused,
		X:      (canvasWidth - maxWidth) / 2,
		Y:      row1Y,
		Width:  maxWidth,
		Height: cfg.NodeHeight,
		Color:  cfg.NodeColors["all_paused"],
	}
	g.Rows[0] = []Node{source}

	// Row 2: engaged split, widths proportional to share of total paused.
	// The denominator clamps to 1 so all-zero input stays well defined, and
	// each width floors at MinWidth so a zero count still renders visibly.
	pausedDenom := float64(m.TotalPaused)
	if pausedDenom <= 0 {
		pausedDenom = 1
	}
	notEngagedW := flooredShare(maxWidth, float64(m.NotEngaged)/pausedDenom, cfg.MinWidth)
	engagedW := flooredShare(maxWidth, float64(m.EngagedCount)/pausedDenom, cfg.MinWidth)

	pairW := notEngagedW + cfg.NodeGap + engagedW
	pairX := (canvasWidth - pairW) / 2
	notEngagedNode := Node{
		ID:     "not_engaged",
		Label:  nodeLabels["not_engaged"],
		Value:  m.NotEngaged,
		X:      pairX,
		Y:      row2Y,
		Width:  notEngagedW,
		Height: cfg.NodeHeight,
		Color:  cfg.NodeColors["not_engaged"],
	}
	engagedNode := Node{
		ID:     "engaged",
		Label:  nodeLabels["engaged"],
		Value:  m.EngagedCount,
		X:      pairX + notEngagedW + cfg.NodeGap,
		Y:      row2Y,
		Width:  engagedW,
		Height: cfg.NodeHeight,
		Color:  cfg.NodeColors["engaged"],
	}
	g.Rows[1] = []Node{notEngagedNode, engagedNode}

	// Row 3: outcome nodes, zero-count outcomes omitted entirely.
	engagedDenom := float64(m.EngagedCount)
	if engagedDenom <= 0 {
		engagedDenom = 1
	}
	var outcomes []Node
	var outcomesW float64
	for _, id := range OutcomeOrder {
		v := m.OutcomeCounts[id]
		if v <= 0 {
			continue
		}
		w := flooredShare(maxWidth, float64(v)/engagedDenom, cfg.MinWidth)
		if len(outcomes) > 0 {
			outcomesW += cfg.NodeGap
		}
		outcomes = append(outcomes, Node{
			ID:     string(id),
			Label:  nodeLabels[string(id)],
			Value:  v,
			X:      outcomesW, // offset within the row, shifted below
			Y:      row3Y,
			Width:  w,
			Height: cfg.NodeHeight,
			Color:  cfg.NodeColors[string(id)],
		})
		outcomesW += w
	}
	rowStart := (canvasWidth - outcomesW) / 2
	for i := range outcomes {
		outcomes[i].X += rowStart
	}
	g.Rows[2] = outcomes

	// Row1 -> row2 ribbons: the source width splits in the same ratios that
	// sized the row-2 nodes; each ribbon lands on its target's full span.
	srcCursor := source.X
	for _, target := range g.Rows[1] {
		share := float64(target.Value) / pausedDenom
		span := source.Width * share
		g.Ribbons = append(g.Ribbons, Ribbon{
			SourceID: source.ID,
			TargetID: target.ID,
			Value:    target.Value,
			Color:    target.Color,
			Opacity:  cfg.RibbonOpacity,
			Path: ribbonPath(
				srcCursor, srcCursor+span, row1Y+cfg.NodeHeight,
				target.X, target.X+target.Width, row2Y,
			),
		})
		srcCursor += span
	}

	// Engaged -> outcome ribbons, accumulated left to right in node order so
	// they never cross.
	srcCursor = engagedNode.X
	for _, target := range g.Rows[2] {
		share := float64(target.Value) / engagedDenom
		span := engagedNode.Width * share
		g.Ribbons = append(g.Ribbons, Ribbon{
			SourceID: engagedNode.ID,
			TargetID: target.ID,
			Value:    target.Value,
			Color:    target.Color,
			Opacity:  cfg.RibbonOpacity,
			Path: ribbonPath(
				srcCursor, srcCursor+span, row2Y+cfg.NodeHeight,
				target.X, target.X+target.Width, row3Y,
			),
		})
		srcCursor += span
	}

	return g
}

// flooredShare scales base by share and clamps the result to at least min.
func flooredShare(base, share, min float64) float64 {
	w := base * share
	if w < min {
		return min
	}
	return w
}

// ribbonPath builds the closed outline of one flared connector: a cubic
// curve from each end of the source sub-span down to the matching end of
// the destination span, with control points at the vertical midpoint, closed
// by the straight node edges.
func ribbonPath(sx0, sx1, sy, dx0, dx1, dy float64) string {
	my := (sy + dy) / 2
	return fmt.Sprintf(
		"M %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f L %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f Z",
		sx0, sy,
		sx0, my, dx0, my, dx0, dy,
		dx1, dy,
		dx1, my, sx1, my, sx1, sy,
	)
}
