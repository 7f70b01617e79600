package dto

import (
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string                      `json:"notificationID"`
	Title          string                      `json:"title"`
	Message        string                      `json:"message"`
	Severity       domain.NotificationSeverity `json:"severity"`
	Timestamp      time.Time                   `json:"timestamp"`
	Read           bool                        `json:"read"`
}

// ListNotificationsResponse wraps the list of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Title:          n.Title,
		Message:        n.Message,
		Severity:       n.Severity,
		Timestamp:      n.Timestamp,
		Read:           n.Read,
	}
}

// ToListNotificationsResponse converts a slice of domain.Notification to ListNotificationsResponse DTO
func ToListNotificationsResponse(notifications []domain.Notification) ListNotificationsResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = ToNotificationResponse(&n)
	}
	return ListNotificationsResponse{Notifications: res}
}
