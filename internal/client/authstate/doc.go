// Package authstate holds the client's authentication state: the Identity
// returned by the last successful login and the derived "logged in" flag.
//
// A Store is created once by the application and passed by reference to
// every consumer that needs it (services, the REPL, the HTTP token
// interceptor). It is mutated only through LogIn and LogOut. Every
// mutation is published to subscribers, and a new subscriber immediately
// receives the current flag before any later change.
//
// Subscribers are plain callbacks invoked synchronously by the writer, one
// publish at a time and in registration order. Watch adapts a subscription
// to a channel for goroutine consumers.
//
// Nothing is persisted: a new process starts logged out.
package authstate
