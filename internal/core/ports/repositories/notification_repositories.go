package repositories

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// NotificationReader defines read operations for the notification sink
type NotificationReader interface {
	// FindNotifications retrieves notifications newest-first.
	FindNotifications(ctx context.Context, limit int, offset int) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for the notification sink
type NotificationWriter interface {
	// SaveNotification prepends a notification (newest-first order).
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead sets the read flag on a notification.
	MarkNotificationRead(ctx context.Context, notificationID string) error
}

// NotificationRepositoryFacade combines all notification-related repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
