package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/client/api"
	"github.com/dmitrijs2005/yogastudio/internal/client/authstate"
	"github.com/dmitrijs2005/yogastudio/internal/client/config"
	"github.com/dmitrijs2005/yogastudio/internal/client/services"
	"github.com/dmitrijs2005/yogastudio/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config *config.Config
	log    logging.Logger

	store           *authstate.Store
	authService     services.AuthService
	accountService  services.AccountService
	sessionService  services.SessionService
	metrics         prometheus.Gatherer
	stopStatusWatch func()

	reader *bufio.Reader
	out    io.Writer

	mu     sync.RWMutex
	status string
}

// NewApp builds the client stack for c. Nothing is sent to the API until
// a command runs.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	store := authstate.New(log)
	registry := prometheus.NewRegistry()

	client, err := api.New(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
		api.WithTokenSource(store),
		api.WithMetrics(api.NewMetrics(registry)),
	)
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	a := &App{
		config:         c,
		log:            log.With("component", "cli"),
		store:          store,
		authService:    services.NewAuthService(client.Auth(), client.Sessions(), store),
		accountService: services.NewAccountService(client.Users(), store),
		sessionService: services.NewSessionService(client.Sessions(), client.Teachers(), store),
		metrics:        registry,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}
	a.stopStatusWatch = store.Subscribe(a.onAuthChange)

	return a, nil
}

// onAuthChange keeps the prompt in line with the store.
func (a *App) onAuthChange(logged bool) {
	status := ""
	if identity, ok := a.store.Identity(); logged && ok {
		status = identity.Username
	}

	a.mu.Lock()
	changed := a.status != status
	a.status = status
	a.mu.Unlock()

	if changed {
		a.log.Debug(context.Background(), "auth state changed", "logged", logged)
	}
}

func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.status == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.status)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsLogged()
}

func (a *App) isAdmin() bool {
	identity, ok := a.store.Identity()
	return ok && identity.Admin
}

// Run starts the token watcher and the REPL, and blocks until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.stopStatusWatch()

	a.log.Info(ctx, "starting client", "api", a.config.APIBaseURL)
	fmt.Fprintln(a.out, "Welcome to the yoga studio client (type 'help' for commands)")

	go a.StartSessionWatcher(ctx, a.config.CheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// StartSessionWatcher pings the API every interval while logged in and
// logs out as soon as the token is refused. It returns when ctx is done.
func (a *App) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logged := a.store.Watch(ctx)
	active := false

	for {
		select {
		case v, ok := <-logged:
			if !ok {
				return
			}
			active = v

		case <-ticker.C:
			if !active {
				continue
			}
			sent, _ := a.store.Identity()
			pctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
			err := a.authService.Ping(pctx)
			cancel()

			switch {
			case err == nil:
			case errors.Is(err, api.ErrUnauthorized):
				// A refusal only counts for the identity the ping was sent with.
				if current, ok := a.store.Identity(); !ok || current != sent {
					a.log.Debug(ctx, "ignoring refusal for a previous identity")
					continue
				}
				a.log.Warn(ctx, "token rejected, logging out")
				a.authService.Logout(ctx)
				fmt.Fprintln(a.out, "Your session has expired, please log in again")
			case api.IsUnavailable(err):
				a.log.Warn(ctx, "server unavailable", "error", err)
			default:
				a.log.Error(ctx, "session check failed", "error", err)
			}

		case <-ctx.Done():
			return
		}
	}
}
