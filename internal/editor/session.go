package editor

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"portfolio-backend/internal/domains/user"
	"portfolio-backend/pkg/client"
)

// SessionState is the auth lifecycle a page moves through.
type SessionState int

const (
	StateUnknown SessionState = iota
	StateLoading
	StateAnonymous
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

var sessionEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthSubscription detaches an auth-change listener.
type AuthSubscription interface {
	Unsubscribe()
}

// AuthClient is the slice of the backend client the session manager
// needs.
type AuthClient interface {
	GetSession(ctx context.Context) (*user.SessionUser, error)
	SignInWithPassword(ctx context.Context, email, password string) (*user.SessionUser, error)
	SignOut(ctx context.Context) error
	OnAuthStateChange(fn client.AuthListener) *client.Subscription
}

// SessionListener receives every state transition.
type SessionListener func(state SessionState, session *user.SessionUser)

// SessionManager tracks the current session and tells the section
// editors whether edit affordances may render.
type SessionManager struct {
	auth AuthClient

	mu        sync.Mutex
	state     SessionState
	session   *user.SessionUser
	lastError string
	listeners map[int]SessionListener
	nextID    int
	authSub   AuthSubscription
	closed    bool
}

func NewSessionManager(auth AuthClient) *SessionManager {
	return &SessionManager{
		auth:      auth,
		state:     StateUnknown,
		listeners: make(map[int]SessionListener),
	}
}

// Start resolves the current session and begins listening for auth
// changes. A failed resolve degrades to anonymous; the page renders
// read-only instead of erroring.
func (m *SessionManager) Start(ctx context.Context) {
	m.transition(StateLoading, nil)

	m.mu.Lock()
	if m.authSub == nil && !m.closed {
		m.authSub = m.auth.OnAuthStateChange(func(event string, session *user.SessionUser) {
			switch event {
			case client.EventSignedIn:
				m.setError("")
				m.transition(StateAuthenticated, session)
			case client.EventSignedOut:
				m.transition(StateAnonymous, nil)
			}
		})
	}
	m.mu.Unlock()

	session, err := m.auth.GetSession(ctx)
	if err != nil || session == nil {
		m.transition(StateAnonymous, nil)
		return
	}
	m.transition(StateAuthenticated, session)
}

// CanEdit reports whether edit affordances are allowed. Only a
// resolved, authenticated session qualifies; unknown and loading do
// not.
func (m *SessionManager) CanEdit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateAuthenticated
}

func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *SessionManager) Session() *user.SessionUser {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// LastError is the sign-in form's error line, empty when clear.
func (m *SessionManager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastError
}

// SignIn validates the form locally before touching the backend and
// remaps backend failures to the copy the form shows.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	if !sessionEmailPattern.MatchString(email) {
		m.setError("enter a valid email address")
		return errSignIn(m.LastError())
	}
	if len(password) < 6 {
		m.setError("password must be at least 6 characters")
		return errSignIn(m.LastError())
	}

	_, err := m.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		m.setError(remapAuthError(err.Error()))
		return errSignIn(m.LastError())
	}

	m.setError("")
	return nil
}

func (m *SessionManager) SignOut(ctx context.Context) error {
	return m.auth.SignOut(ctx)
}

// Subscribe delivers state transitions until the returned
// subscription is unsubscribed.
func (m *SessionManager) Subscribe(fn SessionListener) AuthSubscription {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return &listenerSub{stop: func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}}
}

// Close tears down listeners. Transitions after Close are dropped.
func (m *SessionManager) Close() {
	m.mu.Lock()
	m.closed = true
	sub := m.authSub
	m.authSub = nil
	m.listeners = make(map[int]SessionListener)
	m.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

func (m *SessionManager) transition(state SessionState, session *user.SessionUser) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.state = state
	m.session = session
	listeners := make([]SessionListener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(state, session)
	}
}

func (m *SessionManager) setError(msg string) {
	m.mu.Lock()
	m.lastError = msg
	m.mu.Unlock()
}

// remapAuthError turns raw backend messages into the form's copy.
func remapAuthError(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "invalid login credentials"),
		strings.Contains(lower, "incorrect email or password"):
		return "Incorrect email or password"
	case strings.Contains(lower, "email not confirmed"),
		strings.Contains(lower, "confirm your email"):
		return "Please confirm your email before signing in"
	default:
		return msg
	}
}

type listenerSub struct {
	once sync.Once
	stop func()
}

func (s *listenerSub) Unsubscribe() {
	s.once.Do(s.stop)
}

type errSignIn string

func (e errSignIn) Error() string { return string(e) }
