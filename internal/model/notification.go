package model

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

type Notification struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement"`
	Kind      NotificationKind `gorm:"column:kind;size:16;not null"`
	Message   string           `gorm:"column:message;size:512;not null"`
	RequestID *string          `gorm:"column:request_id;size:36;index"`
	ReadAt    *time.Time       `gorm:"column:read_at"`
	CreatedAt time.Time        `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
