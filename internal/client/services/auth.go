package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the API and record the identity in the store.
//   - Register: create a new account; does not log in.
//   - Logout: clear the stored identity.
//   - Ping: check that the API is reachable with the current credentials.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.Identity, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context)
	Ping(ctx context.Context) error
}

type authService struct {
	auth     AuthAPI
	sessions SessionsAPI
	store    IdentityStore
}

func NewAuthService(auth AuthAPI, sessions SessionsAPI, store IdentityStore) AuthService {
	return &authService{auth: auth, sessions: sessions, store: store}
}

// Login leaves the store untouched when the API rejects the credentials.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.Identity, error) {
	identity, err := a.auth.Login(ctx, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return models.Identity{}, fmt.Errorf("login error: %w", err)
	}
	a.store.LogIn(identity)
	return identity, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := a.auth.Register(ctx, req); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) {
	a.store.LogOut()
}

// Ping lists sessions and discards the result.
func (a *authService) Ping(ctx context.Context) error {
	if _, err := a.sessions.All(ctx); err != nil {
		return fmt.Errorf("ping error: %w", err)
	}
	return nil
}
