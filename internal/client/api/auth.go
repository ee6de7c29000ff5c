package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

const resourceAuth = "auth"

// AuthClient calls the login and register endpoints.
type AuthClient struct {
	c *Client
}

// Login exchanges credentials for an Identity.
func (a *AuthClient) Login(ctx context.Context, req models.LoginRequest) (models.Identity, error) {
	var id models.Identity
	if err := a.c.do(ctx, resourceAuth, http.MethodPost, req, &id, "api", "auth", "login"); err != nil {
		return models.Identity{}, err
	}
	return id, nil
}

// Register creates an account. The backend answers with a message only.
func (a *AuthClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return a.c.do(ctx, resourceAuth, http.MethodPost, req, nil, "api", "auth", "register")
}
