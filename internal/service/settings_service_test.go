package service

import (
	"context"
	"testing"

	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/jspsoluciones/raffle-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db), nil)

	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Gran Rifa de la Suerte", s.Title)
	assert.Equal(t, int64(5000), s.PricePerNumber)
	assert.Equal(t, []string{"Efectivo", "Transferencia", "PSE", "Paypal"}, s.PaymentMethods)
	assert.Nil(t, s.WinningNumber)
}

func TestSettingsUpdateMerges(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db), nil)

	title := "Rifa Navideña"
	price := int64(10000)
	winner := 42
	s, err := svc.Update(ctx, SettingsUpdate{Title: &title, PricePerNumber: &price, WinningNumber: &winner})
	require.NoError(t, err)
	assert.Equal(t, "Rifa Navideña", s.Title)
	assert.Equal(t, int64(10000), s.PricePerNumber)
	require.NotNil(t, s.WinningNumber)
	assert.Equal(t, 42, *s.WinningNumber)
	// untouched fields keep their value
	assert.Equal(t, "Participa en nuestra gran rifa y gana fabulosos premios", s.Description)

	s, err = svc.Update(ctx, SettingsUpdate{ClearWinner: true})
	require.NoError(t, err)
	assert.Nil(t, s.WinningNumber)

	// the merge persisted
	s, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rifa Navideña", s.Title)
}

func TestSettingsPaymentMethods(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db), nil)

	s, err := svc.Update(ctx, SettingsUpdate{PaymentMethods: []string{"Nequi", "Efectivo", "Nequi", "Daviplata"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Nequi", "Efectivo", "Daviplata"}, s.PaymentMethods)

	_, err = svc.Update(ctx, SettingsUpdate{PaymentMethods: []string{"Nequi", ""}})
	require.ErrorIs(t, err, ErrInvalidArgument)

	price := int64(-1)
	_, err = svc.Update(ctx, SettingsUpdate{PricePerNumber: &price})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
