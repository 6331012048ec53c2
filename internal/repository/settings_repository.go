package repository

import (
	"context"
	"errors"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.RaffleSettings, error)
	Save(ctx context.Context, s *model.RaffleSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with the defaults on
// first access.
func (r *settingsRepository) Get(ctx context.Context) (*model.RaffleSettings, error) {
	var s model.RaffleSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", model.SettingsID).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	s = DefaultSettings()
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s *model.RaffleSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func DefaultSettings() model.RaffleSettings {
	return model.RaffleSettings{
		ID:             model.SettingsID,
		Title:          "Gran Rifa de la Suerte",
		Description:    "Participa en nuestra gran rifa y gana fabulosos premios",
		ImageURL:       "/placeholder.svg",
		PricePerNumber: 5000,
		PaymentMethods: []string{"Efectivo", "Transferencia", "PSE", "Paypal"},
	}
}
