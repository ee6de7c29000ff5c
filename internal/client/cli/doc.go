// Package cli provides the interactive yoga studio terminal client.
//
// It wires configuration, the auth state store, the API client and the
// application services, and runs a REPL over them. The prompt follows the
// auth state: commands that need a login are refused while logged out,
// login and register are refused while logged in, and session management
// is reserved to admins.
//
// While logged in, a background watcher pings the API every
// Config.CheckInterval and logs the user out once the token is rejected.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
