package domain

import (
	"fmt"
	"time"
)

// NotificationSeverity classifies a notification for display.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "INFO"
	SeverityWarning NotificationSeverity = "WARNING"
	SeveritySuccess NotificationSeverity = "SUCCESS"
)

// Notification is an entry in the passive notification sink. The ledger
// emits one on login and on every transaction that leaves an item at or
// below its threshold. Entries are kept newest-first and only the Read
// flag ever changes after creation.
type Notification struct {
	NotificationID string               `json:"notificationID"` // Primary Key (UUID)
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Severity       NotificationSeverity `json:"severity"`
	Timestamp      time.Time            `json:"timestamp"`
	Read           bool                 `json:"read"`
}

// NewLowStockAlert builds the WARNING emitted when a movement leaves an item
// at or below its threshold. Level-triggered: one fires on every qualifying
// movement, including repeats while the item stays low.
func NewLowStockAlert(notificationID string, item Item, at time.Time) Notification {
	return Notification{
		NotificationID: notificationID,
		Title:          "Stock alert",
		Message:        fmt.Sprintf("Item %s reached critical level (%d)", item.Name, item.CurrentStock),
		Severity:       SeverityWarning,
		Timestamp:      at,
	}
}
