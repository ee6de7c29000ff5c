// Package common contains constants and helpers shared by the client
// packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
	// RequestIDHeaderName correlates a client call with backend logs.
	RequestIDHeaderName = "X-Request-ID"
)
