package service

import (
	"context"
	"testing"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/funnel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunnelService_MetricsAndRates(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	// 2 walk-bys, 1 no-sale, 1 single. 4 paused, 2 engaged, 1 sale.
	for i := 0; i < 2; i++ {
		_, err := f.interactions.LogWalkBy(ctx, "d1", nil)
		require.NoError(t, err)
	}
	obj := domain.ObjectionNeedToThink
	_, err := f.interactions.LogConversation(ctx, ConversationInput{
		StaffDevice: "d1",
		Persona:     domain.PersonaParent,
		Hook:        domain.HookSignage,
		SaleType:    domain.SaleNone,
		Objection:   &obj,
	})
	require.NoError(t, err)
	_, err = f.interactions.LogConversation(ctx, ConversationInput{
		StaffDevice: "d1",
		Persona:     domain.PersonaParent,
		Hook:        domain.HookSignage,
		SaleType:    domain.SaleSingle,
		Quantity:    1,
		UnitPrice:   domain.PriceSale,
	})
	require.NoError(t, err)

	m, err := f.funnel.Metrics(ctx, domain.PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, 4, m.TotalPaused)
	assert.Equal(t, 2, m.NotEngaged)
	assert.Equal(t, 2, m.EngagedCount)
	assert.Equal(t, 1, m.OutcomeCounts[funnel.OutcomeNoSale])
	assert.Equal(t, 1, m.OutcomeCounts[funnel.OutcomeSingle])
	assert.Equal(t, 1, m.TotalSales)
	assert.Equal(t, domain.PriceSale, m.TotalRevenue)
	assert.InDelta(t, 0.5, m.EngagedRate, 1e-9)
	assert.InDelta(t, 0.5, m.ConversionRate, 1e-9)
	assert.InDelta(t, 0.25, m.OverallConversion, 1e-9)
}

func TestFunnelService_EmptyPeriodHasZeroRates(t *testing.T) {
	f := newServiceFixture(t)

	m, err := f.funnel.Metrics(context.Background(), domain.PeriodToday)
	require.NoError(t, err)

	assert.Equal(t, 0, m.TotalPaused)
	assert.Equal(t, float64(0), m.EngagedRate)
	assert.Equal(t, float64(0), m.ConversionRate)
	assert.Equal(t, float64(0), m.OverallConversion)
}

func TestStatsService_PeriodStats(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.interactions.LogWalkBy(ctx, "d1", nil)
	require.NoError(t, err)
	lead := domain.LeadEmail
	_, err = f.interactions.LogConversation(ctx, ConversationInput{
		StaffDevice: "d1",
		Persona:     domain.PersonaFutureParent,
		Hook:        domain.HookPhysicalKits,
		SaleType:    domain.SaleFullYear,
		LeadType:    &lead,
	})
	require.NoError(t, err)

	stats, err := f.stats.PeriodStats(ctx, domain.PeriodToday)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Visitors)
	assert.Equal(t, 1, stats.Conversations)
	assert.Equal(t, 1, stats.WalkBys)
	assert.Equal(t, 1, stats.Sales.Count)
	assert.Equal(t, domain.PriceYear, stats.Sales.Revenue)
	assert.Equal(t, 12, stats.Sales.Boxes)
	assert.Equal(t, 1, stats.Leads.Email)
	assert.Equal(t, 1, stats.Personas[domain.PersonaFutureParent])
}
