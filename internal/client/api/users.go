package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

const resourceUser = "user"

// UsersClient reads and deletes user accounts.
type UsersClient struct {
	c *Client
}

// GetByID fetches the user with the given id.
func (u *UsersClient) GetByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := u.c.do(ctx, resourceUser, http.MethodGet, nil, &user, "api", "user", url.PathEscape(id)); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete removes the account with the given id. Any response body is
// ignored.
func (u *UsersClient) Delete(ctx context.Context, id string) error {
	return u.c.do(ctx, resourceUser, http.MethodDelete, nil, nil, "api", "user", url.PathEscape(id))
}
