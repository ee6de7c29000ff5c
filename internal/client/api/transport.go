package api

import (
	"net/http"

	"github.com/dmitrijs2005/yogastudio/internal/common"
	"github.com/google/uuid"
)

// TokenSource yields the bearer token to send, or "" for none.
type TokenSource interface {
	Token() string
}

// authTransport attaches the current token and a request id to every
// outgoing request. The token is read per request, never cached.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	return t.base.RoundTrip(r)
}
