package services

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	"github.com/alzoz/stock_management_app/internal/dto"
)

// NotificationReaderSvc defines read operations for the notification sink
type NotificationReaderSvc interface {
	// ListNotifications retrieves notifications newest-first.
	ListNotifications(ctx context.Context, params dto.ListNotificationsParams) ([]domain.Notification, error)
}

// NotificationWriterSvc defines write operations for the notification sink
type NotificationWriterSvc interface {
	// Notify appends a notification to the sink. Always succeeds barring a
	// persistence failure.
	Notify(ctx context.Context, title, message string, severity domain.NotificationSeverity) (*domain.Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, notificationID string) error
}

// NotificationSvcFacade combines all notification-related service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
}
