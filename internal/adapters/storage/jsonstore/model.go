package jsonstore

import (
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

const snapshotVersion = 1

// Meta carries bookkeeping for a persisted snapshot: storage kind, structure
// version for future format upgrades, and the instant it was written.
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// persistUser is the storage shape of a user. The domain type hides the
// password hash from JSON marshalling, so the store keeps its own record.
type persistUser struct {
	UserID        string      `json:"userID"`
	Username      string      `json:"username"`
	PasswordHash  string      `json:"passwordHash"`
	Role          domain.Role `json:"role"`
	LastLoginAt   *time.Time  `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	CreatedBy     string      `json:"createdBy"`
	LastUpdatedAt time.Time   `json:"lastUpdatedAt"`
	LastUpdatedBy string      `json:"lastUpdatedBy"`
}

func toPersistUser(u domain.User) persistUser {
	return persistUser{
		UserID:        u.UserID,
		Username:      u.Username,
		PasswordHash:  u.PasswordHash,
		Role:          u.Role,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
		CreatedBy:     u.CreatedBy,
		LastUpdatedAt: u.LastUpdatedAt,
		LastUpdatedBy: u.LastUpdatedBy,
	}
}

func (p persistUser) toDomain() domain.User {
	return domain.User{
		UserID:       p.UserID,
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
		Role:         p.Role,
		LastLoginAt:  p.LastLoginAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     p.CreatedAt,
			CreatedBy:     p.CreatedBy,
			LastUpdatedAt: p.LastUpdatedAt,
			LastUpdatedBy: p.LastUpdatedBy,
		},
	}
}

// Snapshot is the complete application state, the unit of persistence.
// It is loaded wholesale at startup and rewritten wholesale on every
// mutation. Ordering inside each list is significant: transactions and
// notifications are newest-first, everything else creation order.
type Snapshot struct {
	Meta           Meta                      `json:"_meta"`
	Users          []persistUser             `json:"users"`
	Categories     []domain.Category         `json:"categories"`
	Items          []domain.Item             `json:"items"`
	Transactions   []domain.StockTransaction `json:"transactions"`
	PurchaseOrders []domain.PurchaseOrder    `json:"purchaseOrders"`
	Notifications  []domain.Notification     `json:"notifications"`
}
