package repository

import (
	"context"
	"testing"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkProcessingOnlyClaimsAvailableRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 5)
	repo := NewNumberRepository(db)

	affected, err := repo.MarkProcessing(ctx, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	// a second claim over an overlapping set only wins the free row
	affected, err = repo.MarkProcessing(ctx, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	rows, err := repo.FindByNumbers(ctx, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, model.NumberStatusProcessing, rows[0].Status)
	assert.Equal(t, model.NumberStatusProcessing, rows[1].Status)
	assert.Equal(t, model.NumberStatusProcessing, rows[2].Status)
	assert.Equal(t, model.NumberStatusAvailable, rows[3].Status)
}

func TestMarkSoldRespectsSourceStatus(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 5)
	repo := NewNumberRepository(db)

	_, err := repo.MarkProcessing(ctx, []int{1})
	require.NoError(t, err)

	// approval path: only processing rows qualify
	affected, err := repo.MarkSold(ctx, []int{1, 2}, []model.NumberStatus{model.NumberStatusProcessing}, "buyer-1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	seller := "seller-1"
	affected, err = repo.MarkSold(ctx, []int{2}, []model.NumberStatus{model.NumberStatusAvailable}, "buyer-2", &seller)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	row, err := repo.FindByNumber(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.NumberStatusSold, row.Status)
	require.NotNil(t, row.SellerID)
	assert.Equal(t, "seller-1", *row.SellerID)
}

func TestReleaseClearsBuyer(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 3)
	repo := NewNumberRepository(db)

	_, err := repo.MarkProcessing(ctx, []int{1, 2})
	require.NoError(t, err)

	affected, err := repo.Release(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	rows, err := repo.FindByNumbers(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, model.NumberStatusAvailable, row.Status)
		assert.Nil(t, row.BuyerID)
	}
}
