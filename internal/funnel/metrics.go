// Package funnel computes drawable geometry for the booth traffic funnel:
// three rows of proportional nodes (paused, engaged split, sale outcomes)
// joined by flared sankey ribbons. The layout is a pure function of an
// aggregate snapshot and a geometry config, independent of any rendering
// target.
package funnel

// Outcome identifies one terminal node of the funnel.
type Outcome string

const (
	OutcomeNoSale   Outcome = "no_sale"
	OutcomeSingle   Outcome = "single"
	OutcomeBundle3  Outcome = "bundle_3"
	OutcomeFullYear Outcome = "full_year"
)

// OutcomeOrder fixes the left-to-right order of outcome nodes and their
// ribbons, keeping the layout deterministic and crossing-free.
var OutcomeOrder = []Outcome{OutcomeNoSale, OutcomeSingle, OutcomeBundle3, OutcomeFullYear}

// Metrics is a read-only aggregate snapshot supplied by the stats layer.
// The derived rates are display-only pass-through; the layout never
// recomputes them.
type Metrics struct {
	TotalPaused   int
	NotEngaged    int
	EngagedCount  int
	OutcomeCounts map[Outcome]int

	TotalSales   int
	NoSaleCount  int
	TotalRevenue int

	EngagedRate       float64
	ConversionRate    float64
	OverallConversion float64
}
