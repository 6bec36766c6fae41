package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lumicello/boothlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_CreateAndListSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	old := testutil.NewTestEvent("d1", "booth set up")
	old.Timestamp = time.Now().UTC().AddDate(0, 0, -3)
	recent := testutil.NewTestEvent("d1", "restocked kits")
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	all, err := repo.ListSince(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, recent.ID, all[0].ID)

	since := time.Now().UTC().AddDate(0, 0, -1)
	filtered, err := repo.ListSince(ctx, &since)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "restocked kits", filtered[0].Description)
}

func TestEventRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	ev := testutil.NewTestEvent("d1", "rain started")
	require.NoError(t, repo.Create(ctx, ev))
	require.NoError(t, repo.Delete(ctx, ev.ID))

	assert.ErrorIs(t, repo.Delete(ctx, ev.ID), ErrNotFound)

	list, err := repo.ListSince(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}
