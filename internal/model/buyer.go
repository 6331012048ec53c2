package model

import "time"

// Buyer is created once per purchase request or direct sale and never
// mutated afterwards.
type Buyer struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Name          string    `gorm:"size:120;not null"`
	Phone         string    `gorm:"size:32;not null"`
	Email         *string   `gorm:"size:255"`
	PaymentMethod string    `gorm:"column:payment_method;size:64;not null"`
	PaymentProof  *string   `gorm:"column:payment_proof;size:512"`
	Notes         *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Buyer) TableName() string {
	return "buyers"
}
