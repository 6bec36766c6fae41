package formatter

import (
	"fmt"
	"strings"

	"github.com/lumicello/boothlog/internal/domain"
)

var personaLabels = map[domain.Persona]string{
	domain.PersonaParent:       "Parent",
	domain.PersonaGiftBuyer:    "Gift Buyer",
	domain.PersonaExpat:        "Expat",
	domain.PersonaFutureParent: "Future Parent",
}

var hookLabels = map[domain.Hook]string{
	domain.HookPhysicalKits: "Physical Kits",
	domain.HookBigGarden:    "Big Garden",
	domain.HookSignage:      "Signage",
}

var saleTypeLabels = map[domain.SaleType]string{
	domain.SaleNone:     "No Sale",
	domain.SaleSingle:   "Single Box",
	domain.SaleBundle3:  "3-Box Bundle",
	domain.SaleFullYear: "Full Year",
}

var objectionLabels = map[domain.Objection]string{
	domain.ObjectionTooExpensive: "Too Expensive",
	domain.ObjectionHasToys:      "Has Toys",
	domain.ObjectionNeedToThink:  "Need to Think",
	domain.ObjectionAgeMismatch:  "Age Mismatch",
	domain.ObjectionOther:        "Other",
}

// PersonaLabel returns the display label for a persona.
func PersonaLabel(p domain.Persona) string {
	if l, ok := personaLabels[p]; ok {
		return l
	}
	return string(p)
}

// HookLabel returns the display label for a hook.
func HookLabel(h domain.Hook) string {
	if l, ok := hookLabels[h]; ok {
		return l
	}
	return string(h)
}

// SaleTypeLabel returns the display label for a sale type.
func SaleTypeLabel(s domain.SaleType) string {
	if l, ok := saleTypeLabels[s]; ok {
		return l
	}
	return string(s)
}

// ObjectionLabel returns the display label for an objection.
func ObjectionLabel(o domain.Objection) string {
	if l, ok := objectionLabels[o]; ok {
		return l
	}
	return string(o)
}

// FormatPeriodStats renders the full stats block for one period.
func FormatPeriodStats(s *domain.PeriodStats) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Stats · %s", s.Period)) + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s visitors   %s conversations   %s walk-bys\n\n",
		Dim("Traffic "),
		Bold(fmt.Sprintf("%d", s.Visitors)),
		StyleGreen.Render(fmt.Sprintf("%d", s.Conversations)),
		StyleDim.Render(fmt.Sprintf("%d", s.WalkBys)),
	))

	b.WriteString(fmt.Sprintf("  %s %s sales   %s revenue   %d boxes",
		Dim("Sales   "),
		Bold(fmt.Sprintf("%d", s.Sales.Count)),
		StyleGreen.Render(FormatBaht(s.Sales.Revenue)),
		s.Sales.Boxes,
	))
	if s.Sales.Count > 0 {
		b.WriteString(Dim(fmt.Sprintf("   avg %s", FormatBaht(s.Sales.AvgPerSale))))
	}
	b.WriteString("\n")

	if s.Prices.Price990 > 0 || s.Prices.Price1290 > 0 {
		b.WriteString(fmt.Sprintf("  %s %d × ฿990   %d × ฿1,290\n",
			Dim("Pricing "), s.Prices.Price990, s.Prices.Price1290))
	}
	if s.Leads.Line > 0 || s.Leads.Email > 0 {
		b.WriteString(fmt.Sprintf("  %s %d LINE   %d email\n",
			Dim("Leads   "), s.Leads.Line, s.Leads.Email))
	}
	b.WriteString("\n")

	b.WriteString(formatCountSection("Product Mix", saleTypeOrder, s.ProductMix, SaleTypeLabel, StyleYellow))
	b.WriteString(formatCountSection("Personas", personaOrder, s.Personas, PersonaLabel, StyleBlue))
	b.WriteString(formatCountSection("Hooks", hookOrder, s.Hooks, HookLabel, StyleGreen))
	b.WriteString(formatCountSection("Objections", objectionOrder, s.Objections, ObjectionLabel, StyleRed))

	return b.String()
}

var (
	saleTypeOrder  = []domain.SaleType{domain.SaleNone, domain.SaleSingle, domain.SaleBundle3, domain.SaleFullYear}
	personaOrder   = []domain.Persona{domain.PersonaParent, domain.PersonaGiftBuyer, domain.PersonaExpat, domain.PersonaFutureParent}
	hookOrder      = []domain.Hook{domain.HookPhysicalKits, domain.HookBigGarden, domain.HookSignage}
	objectionOrder = []domain.Objection{
		domain.ObjectionTooExpensive, domain.ObjectionHasToys,
		domain.ObjectionNeedToThink, domain.ObjectionAgeMismatch, domain.ObjectionOther,
	}
)

func formatCountSection[K comparable](title string, order []K, counts map[K]int, label func(K) string, style interface{ Render(...string) string }) string {
	max := 0
	total := 0
	for _, k := range order {
		if counts[k] > max {
			max = counts[k]
		}
		total += counts[k]
	}
	if total == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + StyleHeader.Render(strings.ToUpper(title)) + "\n")
	for _, k := range order {
		n := counts[k]
		if n == 0 {
			continue
		}
		bar := ""
		if max > 0 {
			filled := n * 14 / max
			if filled < 1 {
				filled = 1
			}
			bar = style.Render(strings.Repeat(filledBlock, filled))
		}
		b.WriteString(fmt.Sprintf("  %s %s %d\n", PadRight(label(k), 14), bar, n))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatSellerStats renders the per-seller leaderboard.
func FormatSellerStats(stats []*domain.SellerStats) string {
	if len(stats) == 0 {
		return Dim("No sellers yet.")
	}

	var b strings.Builder
	b.WriteString(Header("Sellers") + "\n\n")
	for _, s := range stats {
		b.WriteString(fmt.Sprintf("  %s  %d engaged · %d sales · %s",
			Bold(PadRight(s.DisplayName, 14)),
			s.TotalEngaged,
			s.TotalSales,
			StyleGreen.Render(FormatBaht(s.TotalRevenue)),
		))
		if s.TotalEngaged > 0 {
			b.WriteString(Dim(fmt.Sprintf(" · %s conv", FormatPercent(s.ConversionRate))))
		}
		b.WriteString("\n")
		if s.TopHook != nil || s.TopPersona != nil {
			detail := "  " + strings.Repeat(" ", 14)
			if s.TopHook != nil {
				detail += Dim("top hook: "+HookLabel(*s.TopHook)) + "  "
			}
			if s.TopPersona != nil {
				detail += Dim("top persona: " + PersonaLabel(*s.TopPersona))
			}
			b.WriteString(detail + "\n")
		}
	}
	return b.String()
}

// FormatInteractionLine renders one interaction as a single timeline row.
func FormatInteractionLine(i *domain.Interaction) string {
	ts := Dim(i.Timestamp.Local().Format("15:04"))
	if i.Type == domain.InteractionWalkBy {
		return fmt.Sprintf("%s  %s", ts, Dim("walked by"))
	}

	var parts []string
	if i.Persona != nil {
		parts = append(parts, StyleBlue.Render(PersonaLabel(*i.Persona)))
	}
	if i.Hook != nil {
		parts = append(parts, Dim("via")+" "+HookLabel(*i.Hook))
	}
	if i.SaleType != nil {
		switch *i.SaleType {
		case domain.SaleNone:
			label := StyleRed.Render("no sale")
			if i.Objection != nil {
				label += Dim(" (" + ObjectionLabel(*i.Objection) + ")")
			}
			parts = append(parts, label)
		default:
			label := StyleGreen.Render(SaleTypeLabel(*i.SaleType))
			if i.Total != nil {
				label += " " + StyleGreen.Render(FormatBaht(*i.Total))
			}
			parts = append(parts, label)
		}
	}
	if i.LeadType != nil && *i.LeadType != domain.LeadNone {
		parts = append(parts, StylePurple.Render("+"+string(*i.LeadType)))
	}
	if i.Notes != "" {
		parts = append(parts, Dim("· "+i.Notes))
	}
	return fmt.Sprintf("%s  %s", ts, strings.Join(parts, " "))
}

// FormatEventLine renders one milestone event as a timeline row.
func FormatEventLine(e *domain.BoothEvent) string {
	ts := Dim(e.Timestamp.Local().Format("15:04"))
	return fmt.Sprintf("%s  %s %s", ts, StyleOrange.Render("◆"), e.Description)
}
