// Package services holds the client-side orchestration of the yoga studio
// API: logging in and out through the auth state store, account actions
// keyed by the current identity, and session booking and management.
//
// Services depend on small interfaces so they can be exercised with fakes;
// *api.Client resource clients and *authstate.Store satisfy them.
package services
