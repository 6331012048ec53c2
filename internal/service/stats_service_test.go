package service

import (
	"context"
	"testing"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/jspsoluciones/raffle-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSummary(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.SeedNumbers(t, db, 10)
	testutil.SeedProfile(t, db, "seller-1", "Operator 1", model.RoleOperator)

	sale := newSaleService(db)
	_, err := sale.Register(ctx, BuyerInput{Name: "Pedro", Phone: "301", PaymentMethod: "Nequi"}, []int{1, 2}, "seller-1")
	require.NoError(t, err)

	request := newRequestService(db)
	_, err = request.Create(ctx, buyerAna(), []int{5})
	require.NoError(t, err)

	svc := NewStatsService(
		repository.NewNumberRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewProfileRepository(db),
	)
	sum, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(10), sum.Total)
	assert.Equal(t, int64(2), sum.Sold)
	assert.Equal(t, int64(1), sum.Processing)
	assert.Equal(t, int64(7), sum.Available)
	assert.InDelta(t, 20.0, sum.PercentSold, 0.001)
	// 2 sold numbers at the default price of 5000
	assert.Equal(t, int64(10000), sum.Revenue)

	require.Len(t, sum.ByPaymentMethod, 1)
	assert.Equal(t, "Nequi", sum.ByPaymentMethod[0].PaymentMethod)
	assert.Equal(t, int64(2), sum.ByPaymentMethod[0].Count)

	require.Len(t, sum.BySeller, 1)
	assert.Equal(t, "seller-1", sum.BySeller[0].SellerID)
	assert.Equal(t, "Operator 1", sum.BySeller[0].Name)
	assert.Equal(t, int64(2), sum.BySeller[0].Assigned)
	assert.Equal(t, int64(2), sum.BySeller[0].Sold)
}
