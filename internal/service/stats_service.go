package service

import (
	"context"
	"fmt"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
)

type SellerStat struct {
	SellerID string
	Name     string
	Color    string
	Assigned int64
	Sold     int64
}

type Summary struct {
	Total           int64
	Sold            int64
	Processing      int64
	Available       int64
	PercentSold     float64
	Revenue         int64
	ByPaymentMethod []repository.PaymentMethodCount
	BySeller        []SellerStat
}

// StatsService aggregates the dashboard summary: totals per status,
// collected revenue and per-seller tallies.
type StatsService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type statsService struct {
	numberRepo   repository.NumberRepository
	settingsRepo repository.SettingsRepository
	profileRepo  repository.ProfileRepository
}

func NewStatsService(numberRepo repository.NumberRepository, settingsRepo repository.SettingsRepository, profileRepo repository.ProfileRepository) StatsService {
	return &statsService{numberRepo: numberRepo, settingsRepo: settingsRepo, profileRepo: profileRepo}
}

func (s *statsService) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.numberRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count numbers: %w", err)
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	byMethod, err := s.numberRepo.SoldByPaymentMethod(ctx)
	if err != nil {
		return nil, fmt.Errorf("group by payment method: %w", err)
	}
	tallies, err := s.numberRepo.SellerTallies(ctx)
	if err != nil {
		return nil, fmt.Errorf("seller tallies: %w", err)
	}
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	byID := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	sum := &Summary{
		Sold:            counts[model.NumberStatusSold],
		Processing:      counts[model.NumberStatusProcessing],
		Available:       counts[model.NumberStatusAvailable],
		ByPaymentMethod: byMethod,
	}
	sum.Total = sum.Sold + sum.Processing + sum.Available
	if sum.Total > 0 {
		sum.PercentSold = float64(sum.Sold) / float64(sum.Total) * 100
	}
	sum.Revenue = sum.Sold * settings.PricePerNumber

	for _, t := range tallies {
		stat := SellerStat{SellerID: t.SellerID, Assigned: t.Assigned, Sold: t.Sold}
		if p, ok := byID[t.SellerID]; ok {
			stat.Name = p.Name
			stat.Color = p.Color
		}
		sum.BySeller = append(sum.BySeller, stat)
	}
	return sum, nil
}
