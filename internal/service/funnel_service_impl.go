package service

import (
	"context"
	"time"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/funnel"
	"github.com/lumicello/boothlog/internal/repository"
)

type funnelService struct {
	stats repository.StatsRepo
	now   func() time.Time
}

func NewFunnelService(stats repository.StatsRepo) FunnelService {
	return &funnelService{stats: stats, now: time.Now}
}

// Metrics assembles the funnel snapshot for one period. Rates divide by zero
// denominators as zero rather than NaN.
func (s *funnelService) Metrics(ctx context.Context, period domain.Period) (*funnel.Metrics, error) {
	c, err := s.stats.FunnelCounts(ctx, periodStart(period, s.now()))
	if err != nil {
		return nil, err
	}

	m := &funnel.Metrics{
		TotalPaused:  c.TotalPaused,
		NotEngaged:   c.NotEngaged,
		EngagedCount: c.Engaged,
		OutcomeCounts: map[funnel.Outcome]int{
			funnel.OutcomeNoSale:   c.NoSale,
			funnel.OutcomeSingle:   c.Single,
			funnel.OutcomeBundle3:  c.Bundle3,
			funnel.OutcomeFullYear: c.FullYear,
		},
		TotalSales:   c.Single + c.Bundle3 + c.FullYear,
		NoSaleCount:  c.NoSale,
		TotalRevenue: c.Revenue,
	}

	if c.TotalPaused > 0 {
		m.EngagedRate = float64(c.Engaged) / float64(c.TotalPaused)
		m.OverallConversion = float64(m.TotalSales) / float64(c.TotalPaused)
	}
	if c.Engaged > 0 {
		m.ConversionRate = float64(m.TotalSales) / float64(c.Engaged)
	}
	return m, nil
}
