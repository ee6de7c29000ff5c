package authstate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() models.Identity {
	return models.Identity{
		ID:        1,
		Username:  "testuser",
		FirstName: "Toto",
		LastName:  "Test",
		Admin:     false,
		Token:     "test_token",
		Type:      "test_user_type",
	}
}

// recorder collects published flags.
type recorder struct {
	mu  sync.Mutex
	got []bool
}

func (r *recorder) fn(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, v)
}

func (r *recorder) values() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.got...)
}

func TestNew_StartsLoggedOut(t *testing.T) {
	s := New(nil)

	assert.False(t, s.IsLogged())
	id, ok := s.Identity()
	assert.False(t, ok)
	assert.True(t, id.Empty())
	assert.Empty(t, s.Token())
}

func TestLogIn_SetsIdentityAndFlag(t *testing.T) {
	s := New(nil)
	u := testIdentity()

	s.LogIn(u)

	assert.True(t, s.IsLogged())
	got, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, u, got)
	assert.Equal(t, "test_token", s.Token())
}

func TestLogInThenLogOut_ClearsEverything(t *testing.T) {
	s := New(nil)

	s.LogIn(testIdentity())
	s.LogOut()

	assert.False(t, s.IsLogged())
	got, ok := s.Identity()
	assert.False(t, ok)
	assert.Equal(t, models.Identity{}, got)
}

func TestLogIn_EmptyIdentityKeepsInvariant(t *testing.T) {
	s := New(nil)
	r := &recorder{}
	s.Subscribe(r.fn)

	s.LogIn(models.Identity{})

	assert.False(t, s.IsLogged())
	assert.Equal(t, []bool{false, false}, r.values())
}

func TestIdentity_ReturnsCopy(t *testing.T) {
	s := New(nil)
	s.LogIn(testIdentity())

	got, _ := s.Identity()
	got.Username = "mallory"
	got.Admin = true

	again, _ := s.Identity()
	assert.Equal(t, "testuser", again.Username)
	assert.False(t, again.Admin)
}

func TestSubscribe_ReplaysCurrentValueThenChanges(t *testing.T) {
	s := New(nil)
	r := &recorder{}

	unsubscribe := s.Subscribe(r.fn)
	defer unsubscribe()

	s.LogIn(testIdentity())
	s.LogOut()

	assert.Equal(t, []bool{false, true, false}, r.values())
}

func TestSubscribe_AfterLogInFirstSeesTrue(t *testing.T) {
	s := New(nil)
	s.LogIn(testIdentity())

	r := &recorder{}
	s.Subscribe(r.fn)

	require.NotEmpty(t, r.values())
	assert.True(t, r.values()[0])
}

func TestLogOut_IdempotentAndStillPublishes(t *testing.T) {
	s := New(nil)
	r := &recorder{}
	s.Subscribe(r.fn)

	s.LogOut()
	s.LogOut()

	assert.False(t, s.IsLogged())
	assert.Equal(t, []bool{false, false, false}, r.values())
}

func TestSubscribe_MultipleIndependentSubscribers(t *testing.T) {
	s := New(nil)
	a, b := &recorder{}, &recorder{}

	unsubA := s.Subscribe(a.fn)
	s.LogIn(testIdentity())
	s.Subscribe(b.fn)
	unsubA()
	s.LogOut()

	assert.Equal(t, []bool{false, true}, a.values())
	assert.Equal(t, []bool{true, false}, b.values())
}

func TestSubscribe_UnsubscribeIsIdempotent(t *testing.T) {
	s := New(nil)
	a, b := &recorder{}, &recorder{}

	unsubA := s.Subscribe(a.fn)
	s.Subscribe(b.fn)
	unsubA()
	unsubA()
	s.LogIn(testIdentity())

	assert.Equal(t, []bool{false}, a.values())
	assert.Equal(t, []bool{false, true}, b.values())
}

func TestSubscribe_CallbackMayReadStoreAndUnsubscribe(t *testing.T) {
	s := New(nil)

	var seen []string
	var unsubscribe func()
	unsubscribe = s.Subscribe(func(logged bool) {
		id, _ := s.Identity()
		seen = append(seen, id.Username)
		if logged {
			unsubscribe()
		}
	})

	s.LogIn(testIdentity())
	s.LogOut()

	assert.Equal(t, []string{"", "testuser"}, seen)
}

func TestSubscribe_NilCallback(t *testing.T) {
	s := New(nil)
	unsubscribe := s.Subscribe(nil)
	require.NotNil(t, unsubscribe)
	unsubscribe()
	s.LogIn(testIdentity())
}

func TestSubscribe_FlagMatchesIdentityInsideCallback(t *testing.T) {
	s := New(nil)

	var mismatches int
	s.Subscribe(func(logged bool) {
		_, ok := s.Identity()
		if ok != logged {
			mismatches++
		}
	})

	for i := 0; i < 10; i++ {
		s.LogIn(testIdentity())
		s.LogOut()
	}
	assert.Zero(t, mismatches)
}

func TestStore_ConcurrentWritersKeepOrderPerSubscriber(t *testing.T) {
	s := New(nil)
	r := &recorder{}
	s.Subscribe(r.fn)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); s.LogIn(testIdentity()) }()
		go func() { defer wg.Done(); s.LogOut() }()
	}
	wg.Wait()
	s.LogOut()

	got := r.values()
	assert.Len(t, got, 1+100+1)
	assert.False(t, got[len(got)-1])
	assert.False(t, s.IsLogged())
}

func TestWatch_DeliversCurrentAndLatest(t *testing.T) {
	s := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Watch(ctx)
	require.False(t, receive(t, ch))

	s.LogIn(testIdentity())
	require.True(t, receive(t, ch))

	// reader lags: only the newest value is kept
	s.LogOut()
	s.LogIn(testIdentity())
	s.LogOut()
	require.False(t, receive(t, ch))

	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %v", v)
	default:
	}
}

func TestWatch_ClosedOnCancel(t *testing.T) {
	s := New(nil)
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Watch(ctx)
	<-ch
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// publishing after close must not panic
	s.LogIn(testIdentity())
}

func receive(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flag")
		return false
	}
}
