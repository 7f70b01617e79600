package jsonstore

import (
	"context"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
)

type notificationRepository struct {
	store *Store
}

func newNotificationRepository(store *Store) *notificationRepository {
	return &notificationRepository{store: store}
}

var _ portsrepo.NotificationRepositoryFacade = (*notificationRepository)(nil)

func (r *notificationRepository) FindNotifications(_ context.Context, limit int, offset int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	r.store.view(func(snap *Snapshot) {
		notifications = make([]domain.Notification, len(snap.Notifications))
		copy(notifications, snap.Notifications)
	})

	if offset > 0 {
		if offset >= len(notifications) {
			return []domain.Notification{}, nil
		}
		notifications = notifications[offset:]
	}
	if limit > 0 && limit < len(notifications) {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (r *notificationRepository) SaveNotification(_ context.Context, notification domain.Notification) error {
	return r.store.mutate(func(snap *Snapshot) error {
		snap.Notifications = append([]domain.Notification{notification}, snap.Notifications...)
		return nil
	})
}

func (r *notificationRepository) MarkNotificationRead(_ context.Context, notificationID string) error {
	return r.store.mutate(func(snap *Snapshot) error {
		for i := range snap.Notifications {
			if snap.Notifications[i].NotificationID == notificationID {
				snap.Notifications[i].Read = true
				return nil
			}
		}
		return nil
	})
}
