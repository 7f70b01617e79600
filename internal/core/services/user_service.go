package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	notifier portssvc.NotificationWriterSvc
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, notifier portssvc.NotificationWriterSvc) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		notifier: notifier,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", username, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %q", apperrors.ErrNotFound, username)
	}
	return user, nil
}

// AuthenticateUser verifies the credentials. A rejected attempt leaves the
// snapshot untouched; a successful one records the login time and drops a
// SUCCESS notification into the sink.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", username, err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		return nil, fmt.Errorf("failed to record login time: %w", err)
	}
	user.LastLoginAt = &now

	if _, err := s.notifier.Notify(ctx, "Secure login",
		fmt.Sprintf("Welcome back, %s", user.Username), domain.SeveritySuccess); err != nil {
		return nil, fmt.Errorf("failed to record login notification: %w", err)
	}

	return user, nil
}
