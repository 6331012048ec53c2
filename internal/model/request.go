package model

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// RaffleRequest is a buyer's pending claim over a set of numbers. The
// numbers are an owned collection written at creation time and immutable
// afterwards; approval/rejection is terminal.
type RaffleRequest struct {
	ID        string          `gorm:"primaryKey;size:36"`
	BuyerID   string          `gorm:"column:buyer_id;size:36;index;not null"`
	Buyer     Buyer           `gorm:"foreignKey:BuyerID"`
	Status    RequestStatus   `gorm:"column:status;size:16;index;not null"`
	Numbers   []RequestNumber `gorm:"foreignKey:RequestID"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (RaffleRequest) TableName() string {
	return "raffle_requests"
}

// NumberList flattens the owned collection into plain ints.
func (r *RaffleRequest) NumberList() []int {
	out := make([]int, 0, len(r.Numbers))
	for _, n := range r.Numbers {
		out = append(out, n.Number)
	}
	return out
}

type RequestNumber struct {
	RequestID string `gorm:"column:request_id;primaryKey;size:36"`
	Number    int    `gorm:"column:number;primaryKey"`
}

func (RequestNumber) TableName() string {
	return "request_numbers"
}
