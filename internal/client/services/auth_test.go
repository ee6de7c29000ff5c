package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/yogastudio/internal/client/api"
	"github.com/dmitrijs2005/yogastudio/internal/client/authstate"
	"github.com/dmitrijs2005/yogastudio/internal/client/models"
	"github.com/stretchr/testify/require"
)

func testIdentity() models.Identity {
	return models.Identity{ID: 1, Username: "testuser", FirstName: "firstName", LastName: "lastName", Token: "jwt", Type: "Bearer"}
}

func TestLogin_Success_StoresIdentity(t *testing.T) {
	store := authstate.New(nil)
	fa := &fakeAuthAPI{LoginRet: testIdentity()}
	svc := NewAuthService(fa, &fakeSessionsAPI{}, store)

	got, err := svc.Login(context.Background(), "yoga@studio.com", []byte("test!1234"))
	require.NoError(t, err)
	require.Equal(t, testIdentity(), got)
	require.Equal(t, models.LoginRequest{Email: "yoga@studio.com", Password: "test!1234"}, fa.LastLogin)

	require.True(t, store.IsLogged())
	id, ok := store.Identity()
	require.True(t, ok)
	require.Equal(t, testIdentity(), id)
}

func TestLogin_Error_WrappedAndStoreUntouched(t *testing.T) {
	store := authstate.New(nil)
	fa := &fakeAuthAPI{LoginErr: api.ErrUnauthorized}
	svc := NewAuthService(fa, &fakeSessionsAPI{}, store)

	var seen []bool
	unsubscribe := store.Subscribe(func(v bool) { seen = append(seen, v) })
	defer unsubscribe()

	_, err := svc.Login(context.Background(), "u", []byte("p"))
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.True(t, strings.HasPrefix(err.Error(), "login error:"))
	require.False(t, store.IsLogged())
	require.Equal(t, []bool{false}, seen)
}

func TestRegister_PassesRequestAndWrapsError(t *testing.T) {
	req := models.RegisterRequest{Email: "bob@test.com", FirstName: "Bob", LastName: "Le Bricoleur", Password: "pass"}

	fa := &fakeAuthAPI{}
	svc := NewAuthService(fa, &fakeSessionsAPI{}, authstate.New(nil))
	require.NoError(t, svc.Register(context.Background(), req))
	require.Equal(t, req, fa.LastRegister)

	fa.RegisterErr = errors.New("email taken")
	err := svc.Register(context.Background(), req)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "register error:"))
}

func TestLogout_ClearsStore(t *testing.T) {
	store := authstate.New(nil)
	store.LogIn(testIdentity())
	svc := NewAuthService(&fakeAuthAPI{}, &fakeSessionsAPI{}, store)

	svc.Logout(context.Background())
	require.False(t, store.IsLogged())
	_, ok := store.Identity()
	require.False(t, ok)
}

func TestPing(t *testing.T) {
	fs := &fakeSessionsAPI{}
	svc := NewAuthService(&fakeAuthAPI{}, fs, authstate.New(nil))

	require.NoError(t, svc.Ping(context.Background()))
	require.Equal(t, []string{"all"}, fs.Calls)

	fs.AllErr = api.ErrUnavailable
	err := svc.Ping(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
}
