package client

import (
	"context"
	"net/http"
	"sync"

	"portfolio-backend/internal/domains/user"
)

// Auth events delivered to OnAuthStateChange listeners.
const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)

// AuthListener receives the event name and the session user, nil on
// sign-out.
type AuthListener func(event string, session *user.SessionUser)

// Subscription detaches one listener.
type Subscription struct {
	once sync.Once
	stop func()
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.stop != nil {
			s.stop()
		}
	})
}

// Auth manages the session: sign-in, sign-out and change
// notifications. The bearer token lives on the parent client so every
// subsystem picks it up.
type Auth struct {
	client *Client

	mu        sync.Mutex
	listeners map[int]AuthListener
	nextID    int
}

func newAuth(c *Client) *Auth {
	return &Auth{
		client:    c,
		listeners: make(map[int]AuthListener),
	}
}

// SignInWithPassword authenticates and keeps the returned token for
// subsequent requests.
func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (*user.SessionUser, error) {
	body := map[string]string{"email": email, "password": password}

	var result user.LoginResponse
	if err := a.client.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &result); err != nil {
		return nil, err
	}

	a.client.setToken(result.AccessToken)
	session := result.User
	a.notify(EventSignedIn, &session)

	return &session, nil
}

// SignOut drops the token. The server call is best effort; the local
// session ends either way.
func (a *Auth) SignOut(ctx context.Context) error {
	_ = a.client.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)

	a.client.setToken("")
	a.notify(EventSignedOut, nil)

	return nil
}

// GetSession resolves the current session, nil when not signed in.
func (a *Auth) GetSession(ctx context.Context) (*user.SessionUser, error) {
	if a.client.currentToken() == "" {
		return nil, nil
	}

	var session user.SessionUser
	if err := a.client.do(ctx, http.MethodGet, "/api/v1/auth/session", nil, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// OnAuthStateChange registers a listener for sign-in/sign-out events.
func (a *Auth) OnAuthStateChange(fn AuthListener) *Subscription {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.mu.Unlock()

	return &Subscription{stop: func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}}
}

func (a *Auth) notify(event string, session *user.SessionUser) {
	a.mu.Lock()
	listeners := make([]AuthListener, 0, len(a.listeners))
	for _, fn := range a.listeners {
		listeners = append(listeners, fn)
	}
	a.mu.Unlock()

	for _, fn := range listeners {
		fn(event, session)
	}
}
