package domain

// SalesSummary aggregates the paid outcomes within a period.
type SalesSummary struct {
	Count      int
	Revenue    int
	Boxes      int
	AvgPerSale int
}

// PriceValidation counts single-box sales at each of the two price points.
type PriceValidation struct {
	Price990  int
	Price1290 int
}

// LeadCounts tallies captured follow-up channels.
type LeadCounts struct {
	Line  int
	Email int
}

// PeriodStats is the aggregated dashboard snapshot for one period.
type PeriodStats struct {
	Period        Period
	Visitors      int
	Conversations int
	WalkBys       int
	Sales         SalesSummary
	Prices        PriceValidation
	ProductMix    map[SaleType]int
	Personas      map[Persona]int
	Hooks         map[Hook]int
	Objections    map[Objection]int
	Leads         LeadCounts
}

// SellerStats is the per-seller performance snapshot for one period.
type SellerStats struct {
	SellerID       string
	DisplayName    string
	TotalEngaged   int
	TotalSales     int
	TotalRevenue   int
	ConversionRate float64
	AvgSaleValue   int
	TopHook        *Hook
	TopPersona     *Persona
}
