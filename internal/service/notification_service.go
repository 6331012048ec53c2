package service

import (
	"context"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
)

type NotificationService interface {
	Notify(ctx context.Context, kind model.NotificationKind, message string, requestID *string)
	List(ctx context.Context, unreadOnly bool, limit int) ([]model.Notification, int64, error)
	MarkAllRead(ctx context.Context) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// Notify is best-effort; failures are dropped so the calling flow never
// blocks on or fails because of a notification.
func (s *notificationService) Notify(ctx context.Context, kind model.NotificationKind, message string, requestID *string) {
	if message == "" {
		return
	}
	n := &model.Notification{
		Kind:      kind,
		Message:   message,
		RequestID: requestID,
	}
	_ = s.repo.Create(ctx, n)
}

func (s *notificationService) List(ctx context.Context, unreadOnly bool, limit int) ([]model.Notification, int64, error) {
	list, err := s.repo.List(ctx, unreadOnly, limit)
	if err != nil {
		return nil, 0, err
	}
	cnt, err := s.repo.CountUnread(ctx)
	if err != nil {
		return list, 0, err
	}
	return list, cnt, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}
