package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"gorm.io/gorm"
)

// SaleService records direct sales: staff sell available numbers on the
// spot, skipping the pending-request stage entirely.
type SaleService interface {
	Register(ctx context.Context, in BuyerInput, numbers []int, sellerID string) (*model.Buyer, error)
}

type saleService struct {
	db     *gorm.DB
	notify NotificationService
}

func NewSaleService(db *gorm.DB, notify NotificationService) SaleService {
	return &saleService{db: db, notify: notify}
}

func (s *saleService) Register(ctx context.Context, in BuyerInput, numbers []int, sellerID string) (*model.Buyer, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptySelection
	}
	if sellerID == "" {
		return nil, fmt.Errorf("seller id is required: %w", ErrInvalidArgument)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	numbers = dedupeNumbers(numbers)

	buyer := in.toModel()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewBuyerRepository(tx).Create(ctx, buyer); err != nil {
			return fmt.Errorf("create buyer: %w", err)
		}
		from := []model.NumberStatus{model.NumberStatusAvailable}
		if err := markSold(ctx, tx, numbers, from, buyer.ID, &sellerID); err != nil {
			// A direct sale only touches available numbers; report the
			// conflict the same way request creation does.
			var tr *InvalidTransitionError
			if errors.As(err, &tr) {
				return &NumberUnavailableError{Number: tr.Number}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Notify(ctx, model.NotificationSuccess, fmt.Sprintf("Venta directa a %s por %d número(s)", buyer.Name, len(numbers)), nil)
	return buyer, nil
}
