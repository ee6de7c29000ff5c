// Package api is the HTTP client for the yoga studio REST API.
//
// # Overview
//
// A Client owns the transport and hands out one typed client per backend
// resource:
//
//	Auth()     POST /api/auth/login, POST /api/auth/register
//	Users()    GET/DELETE /api/user/{id}
//	Teachers() GET /api/teacher, GET /api/teacher/{id}
//	Sessions() CRUD on /api/session plus participate/unparticipate
//
// Every method issues exactly one request and blocks until the response
// arrives or ctx is done. Nothing is cached and nothing is retried; callers
// that want concurrency run calls in their own goroutines.
//
// # Authentication
//
// The transport asks a TokenSource (normally the authstate.Store) for the
// current token when each request is sent and attaches it as a bearer
// Authorization header. Each request also gets an X-Request-ID.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are returned as
// *StatusError, which matches ErrBadRequest, ErrUnauthorized and
// ErrNotFound with errors.Is.
package api
