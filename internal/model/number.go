package model

import "time"

type NumberStatus string

const (
	NumberStatusAvailable  NumberStatus = "available"
	NumberStatusProcessing NumberStatus = "processing"
	NumberStatusSold       NumberStatus = "sold"
)

// RaffleNumber is the ledger row for a single raffle number. One row per
// number, seeded once; only status, seller_id and buyer_id ever change.
type RaffleNumber struct {
	ID        uint64       `gorm:"primaryKey;autoIncrement"`
	Number    int          `gorm:"column:number;uniqueIndex;not null"`
	Status    NumberStatus `gorm:"column:status;size:16;index;not null;default:available"`
	SellerID  *string      `gorm:"column:seller_id;size:128;index"`
	BuyerID   *string      `gorm:"column:buyer_id;size:36;index"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

func (RaffleNumber) TableName() string {
	return "raffle_numbers"
}
