package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedBoothDay inserts a representative day of traffic:
// 3 walk-bys, 1 no-sale, 2 singles (one at each price), 1 bundle, all for one seller.
func seedBoothDay(t *testing.T) (*SQLiteStatsRepo, *domain.Seller) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	interactions := NewSQLiteInteractionRepo(db)
	sellers := NewSQLiteSellerRepo(db)

	seller := testutil.NewTestSeller("Nok")
	require.NoError(t, sellers.Create(ctx, seller))

	records := []*domain.Interaction{
		testutil.NewTestWalkBy("d1"),
		testutil.NewTestWalkBy("d1"),
		testutil.NewTestWalkBy("d1"),
		testutil.NewTestConversation("d1",
			testutil.WithSeller(seller.ID),
			testutil.WithPersona(domain.PersonaParent),
			testutil.WithHook(domain.HookPhysicalKits),
			testutil.WithSale(domain.SaleNone, 0, 0),
			testutil.WithObjection(domain.ObjectionTooExpensive)),
		testutil.NewTestConversation("d1",
			testutil.WithSeller(seller.ID),
			testutil.WithPersona(domain.PersonaParent),
			testutil.WithHook(domain.HookPhysicalKits),
			testutil.WithSale(domain.SaleSingle, 1, domain.PriceSale),
			testutil.WithLead(domain.LeadLine)),
		testutil.NewTestConversation("d1",
			testutil.WithSeller(seller.ID),
			testutil.WithPersona(domain.PersonaGiftBuyer),
			testutil.WithHook(domain.HookBigGarden),
			testutil.WithSale(domain.SaleSingle, 2, domain.PriceSticker),
			testutil.WithLead(domain.LeadEmail)),
		testutil.NewTestConversation("d1",
			testutil.WithSeller(seller.ID),
			testutil.WithPersona(domain.PersonaExpat),
			testutil.WithHook(domain.HookPhysicalKits),
			testutil.WithSale(domain.SaleBundle3, 0, 0)),
	}
	for _, in := range records {
		require.NoError(t, interactions.Create(ctx, in))
	}

	return NewSQLiteStatsRepo(db), seller
}

func TestStatsRepo_PeriodStats(t *testing.T) {
	repo, _ := seedBoothDay(t)
	ctx := context.Background()

	stats, err := repo.PeriodStats(ctx, domain.PeriodAll, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodAll, stats.Period)
	assert.Equal(t, 7, stats.Visitors)
	assert.Equal(t, 4, stats.Conversations)
	assert.Equal(t, 3, stats.WalkBys)

	// 990 + 2*1290 + 2690 = 6260 across three paid outcomes.
	assert.Equal(t, 3, stats.Sales.Count)
	assert.Equal(t, 6260, stats.Sales.Revenue)
	assert.Equal(t, 6, stats.Sales.Boxes)
	assert.Equal(t, 2086, stats.Sales.AvgPerSale)

	assert.Equal(t, 1, stats.Prices.Price990)
	assert.Equal(t, 1, stats.Prices.Price1290)

	assert.Equal(t, 1, stats.ProductMix[domain.SaleNone])
	assert.Equal(t, 2, stats.ProductMix[domain.SaleSingle])
	assert.Equal(t, 1, stats.ProductMix[domain.SaleBundle3])

	assert.Equal(t, 2, stats.Personas[domain.PersonaParent])
	assert.Equal(t, 3, stats.Hooks[domain.HookPhysicalKits])
	assert.Equal(t, 1, stats.Objections[domain.ObjectionTooExpensive])
	assert.Equal(t, 1, stats.Leads.Line)
	assert.Equal(t, 1, stats.Leads.Email)
}

func TestStatsRepo_PeriodStats_SinceBoundExcludesOld(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	interactions := NewSQLiteInteractionRepo(db)
	repo := NewSQLiteStatsRepo(db)

	old := testutil.NewTestWalkBy("d1", testutil.WithTimestamp(time.Now().UTC().AddDate(0, 0, -10)))
	recent := testutil.NewTestWalkBy("d1")
	require.NoError(t, interactions.Create(ctx, old))
	require.NoError(t, interactions.Create(ctx, recent))

	since := time.Now().UTC().Truncate(24 * time.Hour)
	stats, err := repo.PeriodStats(ctx, domain.PeriodToday, &since)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Visitors)
}

func TestStatsRepo_PeriodStats_ExcludesTrashed(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	interactions := NewSQLiteInteractionRepo(db)
	repo := NewSQLiteStatsRepo(db)

	in := testutil.NewTestConversation("d1",
		testutil.WithSale(domain.SaleFullYear, 0, 0))
	require.NoError(t, interactions.Create(ctx, in))
	require.NoError(t, interactions.SoftDelete(ctx, in.ID))

	stats, err := repo.PeriodStats(ctx, domain.PeriodAll, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Visitors)
	assert.Equal(t, 0, stats.Sales.Revenue)
}

func TestStatsRepo_FunnelCounts(t *testing.T) {
	repo, _ := seedBoothDay(t)
	ctx := context.Background()

	c, err := repo.FunnelCounts(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, c.TotalPaused)
	assert.Equal(t, 3, c.NotEngaged)
	assert.Equal(t, 4, c.Engaged)
	assert.Equal(t, 1, c.NoSale)
	assert.Equal(t, 2, c.Single)
	assert.Equal(t, 1, c.Bundle3)
	assert.Equal(t, 0, c.FullYear)
	assert.Equal(t, 6260, c.Revenue)
}

func TestStatsRepo_FunnelCounts_ZonedSinceBound(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	interactions := NewSQLiteInteractionRepo(db)
	repo := NewSQLiteStatsRepo(db)

	// 18:00 UTC on the 29th is 01:00 on the 30th in Bangkok, so it falls
	// inside a "today" bound computed from local midnight.
	in := testutil.NewTestWalkBy("d1",
		testutil.WithTimestamp(time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)))
	require.NoError(t, interactions.Create(ctx, in))

	bangkok := time.FixedZone("ICT", 7*60*60)
	since := time.Date(2026, 8, 30, 0, 0, 0, 0, bangkok)
	c, err := repo.FunnelCounts(ctx, &since)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalPaused)
}

func TestStatsRepo_FunnelCounts_EmptyDB(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStatsRepo(db)

	c, err := repo.FunnelCounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.TotalPaused)
	assert.Equal(t, 0, c.Revenue)
}

func TestStatsRepo_SellerStats(t *testing.T) {
	repo, seller := seedBoothDay(t)
	ctx := context.Background()

	stats, err := repo.SellerStats(ctx, nil)
	require.NoError(t, err)
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, seller.ID, s.SellerID)
	assert.Equal(t, "Nok", s.DisplayName)
	assert.Equal(t, 4, s.TotalEngaged)
	assert.Equal(t, 3, s.TotalSales)
	assert.Equal(t, 6260, s.TotalRevenue)
	assert.InDelta(t, 0.75, s.ConversionRate, 1e-9)
	assert.Equal(t, 2086, s.AvgSaleValue)

	require.NotNil(t, s.TopHook)
	assert.Equal(t, domain.HookPhysicalKits, *s.TopHook)
	require.NotNil(t, s.TopPersona)
	assert.Equal(t, domain.PersonaParent, *s.TopPersona)
}

func TestStatsRepo_SellerStats_SellerWithoutTraffic(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	sellers := NewSQLiteSellerRepo(db)
	repo := NewSQLiteStatsRepo(db)

	require.NoError(t, sellers.Create(ctx, testutil.NewTestSeller("Idle")))

	stats, err := repo.SellerStats(ctx, nil)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].TotalEngaged)
	assert.Equal(t, float64(0), stats[0].ConversionRate)
	assert.Nil(t, stats[0].TopHook)
}
