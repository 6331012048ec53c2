package model

import "time"

// SettingsID is the primary key of the singleton raffle_settings row.
const SettingsID uint64 = 1

type RaffleSettings struct {
	ID             uint64    `gorm:"primaryKey"`
	Title          string    `gorm:"size:255;not null"`
	Description    string    `gorm:"type:text"`
	ImageURL       string    `gorm:"column:image_url;size:512"`
	PricePerNumber int64     `gorm:"column:price_per_number;not null"`
	WinningNumber  *int      `gorm:"column:winning_number"`
	PaymentMethods []string  `gorm:"column:payment_methods;serializer:json"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (RaffleSettings) TableName() string {
	return "raffle_settings"
}
