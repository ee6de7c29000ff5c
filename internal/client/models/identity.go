// Package models defines the entities exchanged with the yoga studio API.
package models

// Identity is the session information returned by a successful login.
// It is held by the auth state store until logout.
type Identity struct {
	// ID is the user id; it is the source of truth for "my account" calls.
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`

	// Token is the bearer token attached to outgoing requests.
	Token string `json:"token,omitempty"`
	// Type is the token type, "Bearer" for the current backend.
	Type string `json:"type,omitempty"`
}

// Empty reports whether i is the zero identity.
func (i Identity) Empty() bool {
	return i == Identity{}
}
