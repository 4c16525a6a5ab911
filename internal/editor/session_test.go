package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/user"
	"portfolio-backend/pkg/client"
)

type fakeAuth struct {
	session     *user.SessionUser
	sessionErr  error
	signInErr   error
	listeners   []client.AuthListener
	signOutSeen bool
}

func (f *fakeAuth) GetSession(ctx context.Context) (*user.SessionUser, error) {
	return f.session, f.sessionErr
}

func (f *fakeAuth) SignInWithPassword(ctx context.Context, email, password string) (*user.SessionUser, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	session := &user.SessionUser{Email: email}
	for _, fn := range f.listeners {
		fn(client.EventSignedIn, session)
	}
	return session, nil
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.signOutSeen = true
	for _, fn := range f.listeners {
		fn(client.EventSignedOut, nil)
	}
	return nil
}

func (f *fakeAuth) OnAuthStateChange(fn client.AuthListener) *client.Subscription {
	f.listeners = append(f.listeners, fn)
	return &client.Subscription{}
}

func TestSessionManagerAnonymousCannotEdit(t *testing.T) {
	m := NewSessionManager(&fakeAuth{})
	defer m.Close()

	// Unknown before Start, then anonymous: never editable.
	assert.False(t, m.CanEdit())

	m.Start(context.Background())
	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.CanEdit())
}

func TestSessionManagerAuthenticatedCanEdit(t *testing.T) {
	auth := &fakeAuth{session: &user.SessionUser{Email: "owner@example.com"}}
	m := NewSessionManager(auth)
	defer m.Close()

	m.Start(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	assert.True(t, m.CanEdit())
	require.NotNil(t, m.Session())
	assert.Equal(t, "owner@example.com", m.Session().Email)
}

func TestSessionManagerResolveErrorDegradesToAnonymous(t *testing.T) {
	auth := &fakeAuth{sessionErr: errors.New("backend down")}
	m := NewSessionManager(auth)
	defer m.Close()

	m.Start(context.Background())

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.CanEdit())
}

func TestSessionManagerSignInValidation(t *testing.T) {
	auth := &fakeAuth{}
	m := NewSessionManager(auth)
	defer m.Close()
	m.Start(context.Background())

	err := m.SignIn(context.Background(), "not-an-email", "secret1")
	require.Error(t, err)
	assert.Equal(t, "enter a valid email address", m.LastError())

	err = m.SignIn(context.Background(), "owner@example.com", "short")
	require.Error(t, err)
	assert.Equal(t, "password must be at least 6 characters", m.LastError())
}

func TestSessionManagerSignInRemapsBackendErrors(t *testing.T) {
	auth := &fakeAuth{signInErr: errors.New("invalid login credentials")}
	m := NewSessionManager(auth)
	defer m.Close()
	m.Start(context.Background())

	err := m.SignIn(context.Background(), "owner@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", m.LastError())

	auth.signInErr = errors.New("email not confirmed")
	err = m.SignIn(context.Background(), "owner@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, "Please confirm your email before signing in", m.LastError())
}

func TestSessionManagerSignInClearsErrorAndNotifies(t *testing.T) {
	auth := &fakeAuth{signInErr: errors.New("invalid login credentials")}
	m := NewSessionManager(auth)
	defer m.Close()
	m.Start(context.Background())

	var transitions []SessionState
	sub := m.Subscribe(func(state SessionState, _ *user.SessionUser) {
		transitions = append(transitions, state)
	})
	defer sub.Unsubscribe()

	_ = m.SignIn(context.Background(), "owner@example.com", "secret1")
	require.NotEmpty(t, m.LastError())

	auth.signInErr = nil
	require.NoError(t, m.SignIn(context.Background(), "owner@example.com", "secret1"))

	assert.Empty(t, m.LastError())
	assert.True(t, m.CanEdit())
	require.NotEmpty(t, transitions)
	assert.Equal(t, StateAuthenticated, transitions[len(transitions)-1])
}

func TestSessionManagerSignOutReturnsToAnonymous(t *testing.T) {
	auth := &fakeAuth{session: &user.SessionUser{Email: "owner@example.com"}}
	m := NewSessionManager(auth)
	defer m.Close()
	m.Start(context.Background())
	require.True(t, m.CanEdit())

	require.NoError(t, m.SignOut(context.Background()))

	assert.True(t, auth.signOutSeen)
	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.CanEdit())
}

func TestSessionManagerCloseDropsTransitions(t *testing.T) {
	auth := &fakeAuth{}
	m := NewSessionManager(auth)
	m.Start(context.Background())

	notified := false
	m.Subscribe(func(SessionState, *user.SessionUser) { notified = true })
	m.Close()

	// Auth events after Close are dropped.
	for _, fn := range auth.listeners {
		fn(client.EventSignedIn, &user.SessionUser{})
	}

	assert.False(t, notified)
	assert.False(t, m.CanEdit())
}
