package jsonstore

import (
	"context"
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	portsrepo "github.com/alzoz/stock_management_app/internal/core/ports/repositories"
)

type userRepository struct {
	store *Store
}

func newUserRepository(store *Store) *userRepository {
	return &userRepository{store: store}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	var found *domain.User
	r.store.view(func(snap *Snapshot) {
		for i := range snap.Users {
			if snap.Users[i].UserID == userID {
				u := snap.Users[i].toDomain()
				found = &u
				return
			}
		}
	})
	return found, nil
}

func (r *userRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	var found *domain.User
	r.store.view(func(snap *Snapshot) {
		for i := range snap.Users {
			if snap.Users[i].Username == username {
				u := snap.Users[i].toDomain()
				found = &u
				return
			}
		}
	})
	return found, nil
}

func (r *userRepository) FindUsers(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	r.store.view(func(snap *Snapshot) {
		users = make([]domain.User, len(snap.Users))
		for i, u := range snap.Users {
			users[i] = u.toDomain()
		}
	})
	return users, nil
}

func (r *userRepository) SaveUser(_ context.Context, user domain.User) error {
	return r.store.mutate(func(snap *Snapshot) error {
		snap.Users = append(snap.Users, toPersistUser(user))
		return nil
	})
}

func (r *userRepository) UpdateLastLogin(_ context.Context, userID string, at time.Time) error {
	return r.store.mutate(func(snap *Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].UserID == userID {
				t := at
				snap.Users[i].LastLoginAt = &t
				snap.Users[i].LastUpdatedAt = at
				return nil
			}
		}
		return nil
	})
}
