package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

// AccountService acts on the account of the logged-in user. The user id
// is read from the store on every call.
type AccountService interface {
	Me(ctx context.Context) (models.User, error)
	DeleteAccount(ctx context.Context) error
}

type accountService struct {
	users UsersAPI
	store IdentityStore
}

func NewAccountService(users UsersAPI, store IdentityStore) AccountService {
	return &accountService{users: users, store: store}
}

// Me fetches the current user. A response for an identity that was
// replaced or logged out while the request was in flight is dropped with
// ErrIdentityChanged.
func (s *accountService) Me(ctx context.Context) (models.User, error) {
	identity, ok := s.store.Identity()
	if !ok {
		return models.User{}, ErrNotLoggedIn
	}

	user, err := s.users.GetByID(ctx, strconv.FormatInt(identity.ID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("get account error: %w", err)
	}

	current, ok := s.store.Identity()
	if !ok || current.ID != identity.ID {
		return models.User{}, ErrIdentityChanged
	}
	return user, nil
}

// DeleteAccount deletes the current user and logs out. The store is left
// as is when the deletion fails.
func (s *accountService) DeleteAccount(ctx context.Context) error {
	identity, ok := s.store.Identity()
	if !ok {
		return ErrNotLoggedIn
	}

	if err := s.users.Delete(ctx, strconv.FormatInt(identity.ID, 10)); err != nil {
		return fmt.Errorf("delete account error: %w", err)
	}
	s.store.LogOut()
	return nil
}
