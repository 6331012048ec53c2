package repository

import (
	"context"
	"time"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	List(ctx context.Context, unreadOnly bool, limit int) ([]model.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkAllRead(ctx context.Context) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) List(ctx context.Context, unreadOnly bool, limit int) ([]model.Notification, error) {
	q := r.db.WithContext(ctx).Model(&model.Notification{})
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var list []model.Notification
	if err := q.Order("id DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("read_at IS NULL").
		Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("read_at IS NULL").
		Update("read_at", now).Error
}
