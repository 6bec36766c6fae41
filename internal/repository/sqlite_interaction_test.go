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

func interactionTestSetup(t *testing.T) (*SQLiteInteractionRepo, *SQLiteSellerRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewSQLiteInteractionRepo(db), NewSQLiteSellerRepo(db)
}

func TestInteractionRepo_CreateAndGetByID(t *testing.T) {
	repo, sellerRepo := interactionTestSetup(t)
	ctx := context.Background()

	seller := testutil.NewTestSeller("Nok")
	require.NoError(t, sellerRepo.Create(ctx, seller))

	in := testutil.NewTestConversation("ipad-front",
		testutil.WithSeller(seller.ID),
		testutil.WithPersona(domain.PersonaParent),
		testutil.WithHook(domain.HookSignage),
		testutil.WithSale(domain.SaleSingle, 2, domain.PriceSale),
		testutil.WithLead(domain.LeadLine),
		testutil.WithNotes("asked about age range"),
	)
	require.NoError(t, repo.Create(ctx, in))

	fetched, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InteractionConversation, fetched.Type)
	assert.True(t, fetched.Engaged)
	assert.Equal(t, "ipad-front", fetched.StaffDevice)
	require.NotNil(t, fetched.SellerID)
	assert.Equal(t, seller.ID, *fetched.SellerID)
	require.NotNil(t, fetched.Persona)
	assert.Equal(t, domain.PersonaParent, *fetched.Persona)
	require.NotNil(t, fetched.Quantity)
	assert.Equal(t, 2, *fetched.Quantity)
	require.NotNil(t, fetched.Total)
	assert.Equal(t, 1980, *fetched.Total)
	assert.Equal(t, "asked about age range", fetched.Notes)
	assert.Nil(t, fetched.DeletedAt)
}

func TestInteractionRepo_WalkByKeepsNilFields(t *testing.T) {
	repo, _ := interactionTestSetup(t)
	ctx := context.Background()

	wb := testutil.NewTestWalkBy("ipad-front")
	require.NoError(t, repo.Create(ctx, wb))

	fetched, err := repo.GetByID(ctx, wb.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Engaged)
	assert.Nil(t, fetched.Persona)
	assert.Nil(t, fetched.SaleType)
	assert.Nil(t, fetched.Quantity)
	assert.Nil(t, fetched.LeadType)
	assert.Nil(t, fetched.Objection)
}

func TestInteractionRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := interactionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInteractionRepo_ListOrdersNewestFirst(t *testing.T) {
	repo, _ := interactionTestSetup(t)
	ctx := context.Background()

	older := testutil.NewTestWalkBy("d1", testutil.WithTimestamp(time.Now().UTC().Add(-2*time.Hour)))
	newer := testutil.NewTestWalkBy("d1", testutil.WithTimestamp(time.Now().UTC().Add(-1*time.Hour)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx, InteractionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestInteractionRepo_ListFilters(t *testing.T) {
	repo, sellerRepo := interactionTestSetup(t)
	ctx := context.Background()

	seller := testutil.NewTestSeller("Ploy")
	require.NoError(t, sellerRepo.Create(ctx, seller))

	sale := testutil.NewTestConversation("d1",
		testutil.WithSeller(seller.ID),
		testutil.WithSale(domain.SaleBundle3, 0, 0))
	noSale := testutil.NewTestConversation("d1",
		testutil.WithSale(domain.SaleNone, 0, 0),
		testutil.WithObjection(domain.ObjectionTooExpensive))
	walkBy := testutil.NewTestWalkBy("d1")
	for _, in := range []*domain.Interaction{sale, noSale, walkBy} {
		require.NoError(t, repo.Create(ctx, in))
	}

	sales, err := repo.List(ctx, InteractionFilter{SalesOnly: true})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)

	bySeller, err := repo.List(ctx, InteractionFilter{SellerID: seller.ID})
	require.NoError(t, err)
	require.Len(t, bySeller, 1)

	walkBys, err := repo.List(ctx, InteractionFilter{Type: domain.InteractionWalkBy})
	require.NoError(t, err)
	require.Len(t, walkBys, 1)
	assert.Equal(t, walkBy.ID, walkBys[0].ID)
}

func TestInteractionRepo_ListSinceBound(t *testing.T) {
	repo, _ := interactionTestSetup(t)
	ctx := context.Background()

	old := testutil.NewTestWalkBy("d1", testutil.WithTimestamp(time.Now().UTC().AddDate(0, 0, -10)))
	recent := testutil.NewTestWalkBy("d1")
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	since := time.Now().UTC().AddDate(0, 0, -7)
	list, err := repo.List(ctx, InteractionFilter{Since: &since})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recent.ID, list[0].ID)
}

func TestInteractionRepo_ListZonedSinceBound(t *testing.T) {
	repo, _ := interactionTestSetup(t)
	ctx := context.Background()

	// Stored in UTC on the 29th but already the 30th in Bangkok, so a
	// local-midnight bound must still match it.
	in := testutil.NewTestWalkBy("d1",
		testutil.WithTimestamp(time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, in))

	bangkok := time.FixedZone("ICT", 7*60*60)
	since := time.Date(2026, 8, 30, 0, 0, 0, 0, bangkok)
	list, err := repo.List(ctx, InteractionFilter{Since: &since})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, in.ID, list[0].ID)
}

func TestInteractionRepo_TrashLifecycle(t *testing.T) {
	repo, _ := interactionTestSetup(t)
	ctx := context.Background()

	in := testutil.NewTestConversation("d1", testutil.WithSale(domain.SaleNone, 0, 0))
	require.NoError(t, repo.Create(ctx, in))

	require.NoError(t, repo.SoftDelete(ctx, in.ID))

	// Gone from the live list, present in trash.
	list, err := repo.List(ctx, InteractionFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	trash, err := repo.ListTrash(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.NotNil(t, trash[0].DeletedAt)

	// Deleting twice is a no-op failure.
	assert.ErrorIs(t, repo.SoftDelete(ctx, in.ID), ErrNotFound)

	require.NoError(t, repo.Restore(ctx, in.ID))
	list, err = repo.List(ctx, InteractionFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Purge only touches trashed rows.
	assert.ErrorIs(t, repo.Purge(ctx, in.ID), ErrNotFound)
	require.NoError(t, repo.SoftDelete(ctx, in.ID))
	require.NoError(t, repo.Purge(ctx, in.ID))
	_, err = repo.GetByID(ctx, in.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInteractionRepo_PurgeTrash(t *testing.T) {
	repo, _ := interactionTestSetup(t)
	ctx := context.Background()

	kept := testutil.NewTestWalkBy("d1")
	trashed1 := testutil.NewTestWalkBy("d1")
	trashed2 := testutil.NewTestWalkBy("d1")
	for _, in := range []*domain.Interaction{kept, trashed1, trashed2} {
		require.NoError(t, repo.Create(ctx, in))
	}
	require.NoError(t, repo.SoftDelete(ctx, trashed1.ID))
	require.NoError(t, repo.SoftDelete(ctx, trashed2.ID))

	n, err := repo.PurgeTrash(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.GetByID(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestInteractionRepo_Update(t *testing.T) {
	repo, _ := interactionTestSetup(t)
	ctx := context.Background()

	in := testutil.NewTestConversation("d1",
		testutil.WithPersona(domain.PersonaExpat),
		testutil.WithSale(domain.SaleNone, 0, 0),
		testutil.WithObjection(domain.ObjectionNeedToThink))
	require.NoError(t, repo.Create(ctx, in))

	newNotes := "came back later and bought"
	st := domain.SaleFullYear
	in.Notes = newNotes
	in.SaleType = &st
	total := domain.PriceYear
	in.Total = &total
	in.Objection = nil
	require.NoError(t, repo.Update(ctx, in))

	fetched, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, newNotes, fetched.Notes)
	require.NotNil(t, fetched.SaleType)
	assert.Equal(t, domain.SaleFullYear, *fetched.SaleType)
	assert.Nil(t, fetched.Objection)
	assert.NotNil(t, fetched.UpdatedAt)
}
