package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/jspsoluciones/raffle-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerSelect(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)
	svc := NewLedgerService(db)

	require.NoError(t, svc.Select(ctx, []int{1, 2, 3}))

	require.NoError(t, svc.MarkProcessing(ctx, []int{2}))
	err := svc.Select(ctx, []int{1, 2, 3})
	var unavailable *NumberUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 2, unavailable.Number)

	err = svc.Select(ctx, []int{1, 99})
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 99, unavailable.Number)

	require.ErrorIs(t, svc.Select(ctx, nil), ErrEmptySelection)
}

func TestLedgerTransitions(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)
	svc := NewLedgerService(db)
	repo := repository.NewNumberRepository(db)

	// available -> processing
	require.NoError(t, svc.MarkProcessing(ctx, []int{1, 2}))
	row, err := repo.FindByNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.NumberStatusProcessing, row.Status)

	// claiming a processing number again is an invalid transition
	err = svc.MarkProcessing(ctx, []int{2, 3})
	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, 2, transition.Number)
	assert.Equal(t, model.NumberStatusProcessing, transition.Status)

	// the failed call must not have touched number 3
	row, err = repo.FindByNumber(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, model.NumberStatusAvailable, row.Status)

	// processing -> sold (approval) and available -> sold (direct sale)
	require.NoError(t, svc.MarkSold(ctx, []int{1, 3}, "buyer-1", nil))
	for _, n := range []int{1, 3} {
		row, err = repo.FindByNumber(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, model.NumberStatusSold, row.Status)
		require.NotNil(t, row.BuyerID)
		assert.Equal(t, "buyer-1", *row.BuyerID)
	}

	// sold is terminal
	err = svc.MarkSold(ctx, []int{1}, "buyer-2", nil)
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, 1, transition.Number)

	// release only applies to processing numbers
	require.NoError(t, svc.Release(ctx, []int{2}))
	row, err = repo.FindByNumber(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.NumberStatusAvailable, row.Status)
	assert.Nil(t, row.BuyerID)

	err = svc.Release(ctx, []int{4})
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, 4, transition.Number)
}

func TestLedgerAssignSeller(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)
	svc := NewLedgerService(db)
	repo := repository.NewNumberRepository(db)

	require.NoError(t, svc.MarkProcessing(ctx, []int{6}))
	require.NoError(t, svc.AssignSeller(ctx, []int{5, 6, 7}, "seller-1"))

	for _, n := range []int{5, 6, 7} {
		row, err := repo.FindByNumber(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, row.SellerID)
		assert.Equal(t, "seller-1", *row.SellerID)
	}
	// assignment never alters status
	row, err := repo.FindByNumber(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, model.NumberStatusProcessing, row.Status)

	err = svc.AssignSeller(ctx, []int{5, 99}, "seller-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLedgerAssignRange(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 5)
	require.NoError(t, db.Where("number = ?", 3).Delete(&model.RaffleNumber{}).Error)
	svc := NewLedgerService(db)

	count, err := svc.AssignRange(ctx, 1, 5, "seller-2")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	_, err = svc.AssignRange(ctx, 5, 1, "seller-2")
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.AssignRange(ctx, 1, 5, "")
	require.True(t, errors.Is(err, ErrInvalidArgument))
}
