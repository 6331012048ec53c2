package service

import (
	"context"
	"testing"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/jspsoluciones/raffle-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSaleService(db *gorm.DB) SaleService {
	notify := NewNotificationService(repository.NewNotificationRepository(db))
	return NewSaleService(db, notify)
}

func TestDirectSale(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)
	svc := newSaleService(db)
	numberRepo := repository.NewNumberRepository(db)

	buyer, err := svc.Register(ctx, BuyerInput{Name: "Pedro", Phone: "3017654321"}, []int{1, 2}, "seller-1")
	require.NoError(t, err)
	assert.Equal(t, "Efectivo", buyer.PaymentMethod)

	for _, n := range []int{1, 2} {
		row, err := numberRepo.FindByNumber(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, model.NumberStatusSold, row.Status)
		require.NotNil(t, row.BuyerID)
		assert.Equal(t, buyer.ID, *row.BuyerID)
		require.NotNil(t, row.SellerID)
		assert.Equal(t, "seller-1", *row.SellerID)
	}
}

func TestDirectSaleConflictIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)
	svc := newSaleService(db)

	_, err := svc.Register(ctx, BuyerInput{Name: "Pedro", Phone: "301"}, []int{5}, "seller-1")
	require.NoError(t, err)

	// number 5 is already sold; the whole sale must fail without residue
	_, err = svc.Register(ctx, BuyerInput{Name: "Lucia", Phone: "302"}, []int{5, 6}, "seller-2")
	var unavailable *NumberUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 5, unavailable.Number)

	var buyers int64
	require.NoError(t, db.Model(&model.Buyer{}).Count(&buyers).Error)
	assert.Equal(t, int64(1), buyers)

	row, err := repository.NewNumberRepository(db).FindByNumber(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, model.NumberStatusAvailable, row.Status)
	assert.Nil(t, row.BuyerID)
}

func TestDirectSaleValidation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)
	svc := newSaleService(db)

	_, err := svc.Register(ctx, BuyerInput{Name: "Pedro", Phone: "301"}, nil, "seller-1")
	require.ErrorIs(t, err, ErrEmptySelection)

	_, err = svc.Register(ctx, BuyerInput{Name: "Pedro", Phone: "301"}, []int{1}, "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
