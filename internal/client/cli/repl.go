package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Sessions(ctx context.Context) error
	Session(ctx context.Context, args []string) error
	Teachers(ctx context.Context) error
	CreateSession(ctx context.Context) error
	UpdateSession(ctx context.Context, args []string) error
	DeleteSession(ctx context.Context, args []string) error
	Participate(ctx context.Context, args []string) error
	UnParticipate(ctx context.Context, args []string) error

	Stats(ctx context.Context) error
}

type guard int

const (
	guardNone guard = iota
	// guardAuth refuses the command while logged out.
	guardAuth
	// guardUnauth refuses the command while logged in.
	guardUnauth
	guardAdmin
)

type command struct {
	guard guard
	run   func(ctx context.Context, a execIface, args []string) error
}

func noArgs(f func(execIface, context.Context) error) func(context.Context, execIface, []string) error {
	return func(ctx context.Context, a execIface, _ []string) error { return f(a, ctx) }
}

func withArgs(f func(execIface, context.Context, []string) error) func(context.Context, execIface, []string) error {
	return func(ctx context.Context, a execIface, args []string) error { return f(a, ctx, args) }
}

var commands = map[string]command{
	"register":       {guardUnauth, noArgs(execIface.Register)},
	"login":          {guardUnauth, noArgs(execIface.Login)},
	"logout":         {guardAuth, noArgs(execIface.Logout)},
	"me":             {guardAuth, noArgs(execIface.Me)},
	"delete-account": {guardAuth, noArgs(execIface.DeleteAccount)},
	"whoami":         {guardAuth, noArgs(execIface.WhoAmI)},
	"sessions":       {guardAuth, noArgs(execIface.Sessions)},
	"session":        {guardAuth, withArgs(execIface.Session)},
	"teachers":       {guardAuth, noArgs(execIface.Teachers)},
	"create":         {guardAdmin, noArgs(execIface.CreateSession)},
	"update":         {guardAdmin, withArgs(execIface.UpdateSession)},
	"delete":         {guardAdmin, withArgs(execIface.DeleteSession)},
	"participate":    {guardAuth, withArgs(execIface.Participate)},
	"unparticipate":  {guardAuth, withArgs(execIface.UnParticipate)},
	"stats":          {guardNone, noArgs(execIface.Stats)},
}

// allowed reports whether a may run a command behind g, printing the
// reason when it may not.
func allowed(a execIface, g guard) bool {
	switch g {
	case guardAuth:
		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			return false
		}
	case guardUnauth:
		if a.isLoggedIn() {
			printlnFn("You are already logged in, log out first")
			return false
		}
	case guardAdmin:
		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			return false
		}
		if !a.isAdmin() {
			printlnFn("This command is reserved to admins")
			return false
		}
	}
	return true
}

func helpText(a execIface) string {
	switch {
	case a.isAdmin():
		return "Available commands: sessions, session <id>, teachers, create, update <id>, delete <id>, participate <id>, unparticipate <id>, me, whoami, delete-account, stats, logout, exit"
	case a.isLoggedIn():
		return "Available commands: sessions, session <id>, teachers, participate <id>, unparticipate <id>, me, whoami, delete-account, stats, logout, exit"
	default:
		return "Available commands: register, login, stats, exit"
	}
}

// runREPL starts a simple read–eval–print loop for the yoga studio client.
//
// It reads a line from reader, parses the first token as the command and
// the rest as its arguments, checks the command's guard and dispatches to
// a. The prompt shows the current status from statusFn. The loop exits on
// EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are reported to the user and the
// loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("yoga %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := commands[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if !allowed(a, cmd.guard) {
			continue
		}
		if err := cmd.run(ctx, a, args); err != nil {
			printlnFn("Error:", userMessage(err))
		}
	}
}
