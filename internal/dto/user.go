package dto

import (
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
)

// UserResponse defines the data returned for a user. The password hash is
// never exposed.
type UserResponse struct {
	UserID      string      `json:"userID"`
	Username    string      `json:"username"`
	Role        domain.Role `json:"role"`
	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		Role:        u.Role,
		LastLoginAt: u.LastLoginAt,
	}
}
