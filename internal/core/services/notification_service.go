package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/dto"
	"github.com/google/uuid"
)

// notificationService fronts the passive notification sink. It never evicts:
// the list grows for the lifetime of the snapshot.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) Notify(ctx context.Context, title, message string, severity domain.NotificationSeverity) (*domain.Notification, error) {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		Title:          title,
		Message:        message,
		Severity:       severity,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}
	return &notification, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, params dto.ListNotificationsParams) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindNotifications(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}
