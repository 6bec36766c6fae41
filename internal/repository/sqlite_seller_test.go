package repository

import (
	"context"
	"testing"

	"github.com/lumicello/boothlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSellerRepo(db)
	ctx := context.Background()

	seller := testutil.NewTestSeller("Mae Fah")
	require.NoError(t, repo.Create(ctx, seller))

	fetched, err := repo.GetByID(ctx, "mae_fah")
	require.NoError(t, err)
	assert.Equal(t, "Mae Fah", fetched.DisplayName)
	assert.True(t, fetched.IsActive)
}

func TestSellerRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSellerRepo(db)

	_, err := repo.GetByID(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSellerRepo_ListFiltersInactive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSellerRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSeller("Active")))
	retired := testutil.NewTestSeller("Retired")
	require.NoError(t, repo.Create(ctx, retired))
	require.NoError(t, repo.SetActive(ctx, retired.ID, false))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].DisplayName)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSellerRepo_SetActive_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSellerRepo(db)

	err := repo.SetActive(context.Background(), "nobody", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaffRepo_UpsertAndActiveSeller(t *testing.T) {
	db := testutil.NewTestDB(t)
	staffRepo := NewSQLiteStaffRepo(db)
	sellerRepo := NewSQLiteSellerRepo(db)
	ctx := context.Background()

	seller := testutil.NewTestSeller("Nok")
	require.NoError(t, sellerRepo.Create(ctx, seller))

	device := testutil.NewTestStaff("ipad-front")
	require.NoError(t, staffRepo.Upsert(ctx, device))

	// Re-registering the same device must not error.
	device.DisplayName = "Front iPad"
	require.NoError(t, staffRepo.Upsert(ctx, device))

	fetched, err := staffRepo.GetByDevice(ctx, "ipad-front")
	require.NoError(t, err)
	assert.Equal(t, "Front iPad", fetched.DisplayName)
	assert.Nil(t, fetched.ActiveSeller)

	require.NoError(t, staffRepo.SetActiveSeller(ctx, "ipad-front", &seller.ID))
	fetched, err = staffRepo.GetByDevice(ctx, "ipad-front")
	require.NoError(t, err)
	require.NotNil(t, fetched.ActiveSeller)
	assert.Equal(t, seller.ID, *fetched.ActiveSeller)

	// Clearing the binding stores NULL.
	require.NoError(t, staffRepo.SetActiveSeller(ctx, "ipad-front", nil))
	fetched, err = staffRepo.GetByDevice(ctx, "ipad-front")
	require.NoError(t, err)
	assert.Nil(t, fetched.ActiveSeller)
}

func TestStaffRepo_GetByDevice_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStaffRepo(db)

	_, err := repo.GetByDevice(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
