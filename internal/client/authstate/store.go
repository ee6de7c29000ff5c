package authstate

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
	"github.com/dmitrijs2005/yogastudio/internal/logging"
)

type subscriber struct {
	id int
	fn func(bool)
}

// Store is the process-wide holder of the current Identity. The zero value
// is not usable; build one with New.
type Store struct {
	log logging.Logger

	mu       sync.RWMutex
	identity models.Identity

	// notifyMu serializes publishes and subscriber replay so every
	// subscriber sees flag values in the order they were written.
	notifyMu sync.Mutex

	subsMu sync.Mutex
	nextID int
	subs   []subscriber
}

// New returns a logged-out Store. A nil logger discards log output.
func New(log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{log: log.With("component", "authstate")}
}

// LogIn stores identity and publishes the new flag. The flag is derived
// from the identity, so logging in with an empty Identity is a logout.
func (s *Store) LogIn(identity models.Identity) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	logged := !identity.Empty()
	if logged {
		s.log.Info(context.Background(), "logged in", "user_id", identity.ID, "username", identity.Username, "admin", identity.Admin)
	}
	s.publish(logged)
}

// LogOut clears the identity and publishes false, even when already
// logged out.
func (s *Store) LogOut() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	wasLogged := !s.identity.Empty()
	s.identity = models.Identity{}
	s.mu.Unlock()

	if wasLogged {
		s.log.Info(context.Background(), "logged out")
	}
	s.publish(false)
}

// IsLogged reports whether an Identity is held.
func (s *Store) IsLogged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.identity.Empty()
}

// Identity returns a copy of the current identity and whether one is held.
func (s *Store) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, !s.identity.Empty()
}

// Token returns the bearer token of the current identity, or "" when
// logged out. It satisfies api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Token
}

// Subscribe registers fn and calls it at once with the current flag, then
// on every LogIn/LogOut until the returned function is called. fn runs on
// the writer's goroutine; it may read the store and may unsubscribe, but
// must not call LogIn, LogOut or Subscribe.
func (s *Store) Subscribe(fn func(logged bool)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.subsMu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subsMu.Unlock()

	fn(s.IsLogged())

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Watch is Subscribe delivered over a channel. The channel holds at most
// one pending value: a reader that falls behind skips intermediate flags
// but always ends on the latest one. The channel is closed once ctx is
// done.
func (s *Store) Watch(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)

	unsubscribe := s.Subscribe(func(logged bool) {
		select {
		case ch <- logged:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- logged
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		// no publish can be running once notifyMu is held
		s.notifyMu.Lock()
		close(ch)
		s.notifyMu.Unlock()
	}()

	return ch
}

func (s *Store) publish(logged bool) {
	s.subsMu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.fn(logged)
	}
}

func (s *Store) remove(id int) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
