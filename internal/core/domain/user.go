package domain

import "time"

// Role labels a user's access level. Roles are attached at login; there is
// no per-operation permission matrix yet.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleStoreKeeper Role = "STORE_KEEPER"
	RoleViewer      Role = "VIEWER"
)

// User represents an operator of the application.
type User struct {
	UserID       string     `json:"userID"` // Primary Key (UUID)
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}
