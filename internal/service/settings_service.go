package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"github.com/jspsoluciones/raffle-backend/internal/storage"
)

// SettingsUpdate is a partial update; nil fields keep their current value.
type SettingsUpdate struct {
	Title          *string
	Description    *string
	ImageURL       *string
	PricePerNumber *int64
	WinningNumber  *int
	ClearWinner    bool
	PaymentMethods []string
}

type SettingsService interface {
	Get(ctx context.Context) (*model.RaffleSettings, error)
	Update(ctx context.Context, upd SettingsUpdate) (*model.RaffleSettings, error)
	UploadImage(ctx context.Context, data []byte, contentType string) (*model.RaffleSettings, error)
}

type settingsService struct {
	repo     repository.SettingsRepository
	uploader *storage.Uploader
}

func NewSettingsService(repo repository.SettingsRepository, uploader *storage.Uploader) SettingsService {
	return &settingsService{repo: repo, uploader: uploader}
}

func (s *settingsService) Get(ctx context.Context) (*model.RaffleSettings, error) {
	return s.repo.Get(ctx)
}

// Update merges the provided fields into the singleton and persists it
// (last write wins). Payment methods are de-duplicated preserving order.
func (s *settingsService) Update(ctx context.Context, upd SettingsUpdate) (*model.RaffleSettings, error) {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		cur.Title = *upd.Title
	}
	if upd.Description != nil {
		cur.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		cur.ImageURL = *upd.ImageURL
	}
	if upd.PricePerNumber != nil {
		if *upd.PricePerNumber < 0 {
			return nil, fmt.Errorf("price per number cannot be negative: %w", ErrInvalidArgument)
		}
		cur.PricePerNumber = *upd.PricePerNumber
	}
	if upd.ClearWinner {
		cur.WinningNumber = nil
	} else if upd.WinningNumber != nil {
		cur.WinningNumber = upd.WinningNumber
	}
	if upd.PaymentMethods != nil {
		methods, err := normalizePaymentMethods(upd.PaymentMethods)
		if err != nil {
			return nil, err
		}
		cur.PaymentMethods = methods
	}
	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return cur, nil
}

func (s *settingsService) UploadImage(ctx context.Context, data []byte, contentType string) (*model.RaffleSettings, error) {
	if s.uploader == nil {
		return nil, errors.New("image storage is not configured")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image payload is empty: %w", ErrInvalidArgument)
	}
	path := fmt.Sprintf("raffle/%s", uuid.NewString())
	url, err := s.uploader.Upload(ctx, path, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	return s.Update(ctx, SettingsUpdate{ImageURL: &url})
}

func normalizePaymentMethods(methods []string) ([]string, error) {
	seen := make(map[string]bool, len(methods))
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		if m == "" {
			return nil, fmt.Errorf("payment method cannot be empty: %w", ErrInvalidArgument)
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out, nil
}
