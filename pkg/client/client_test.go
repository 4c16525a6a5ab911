package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/user"
)

func TestNewRequiresBaseURLAndKey(t *testing.T) {
	_, err := New(Config{APIKey: "key"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "http://localhost:8080"})
	assert.Error(t, err)

	c, err := New(Config{BaseURL: "http://localhost:8080", APIKey: "key"})
	require.NoError(t, err)
	assert.NotNil(t, c.Records)
	assert.NotNil(t, c.Auth)
	assert.NotNil(t, c.Storage)
}

func TestReadsFailOpenToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "SYS_001", "message": "boom"},
		})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, APIKey: "key"})
	require.NoError(t, err)

	assert.Empty(t, c.Records.ListExperience(context.Background()))
	assert.Empty(t, c.Records.ListProjects(context.Background()))
	assert.Nil(t, c.Records.GetIntroduction(context.Background()))
}

func TestProjectBySlugReportsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "RES_001", "message": "project not found"},
		})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, APIKey: "key"})
	require.NoError(t, err)

	_, err = c.Records.GetProjectBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")
}

func TestSignInKeepsTokenForLaterRequests(t *testing.T) {
	var sessionAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"access_token": "token-123",
					"user":         map[string]string{"email": "owner@example.com"},
				},
			})
		case "/api/v1/auth/session":
			sessionAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]string{"email": "owner@example.com"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, APIKey: "key"})
	require.NoError(t, err)

	var events []string
	sub := c.Auth.OnAuthStateChange(func(event string, _ *user.SessionUser) {
		events = append(events, event)
	})
	defer sub.Unsubscribe()

	session, err := c.Auth.SignInWithPassword(context.Background(), "owner@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", session.Email)
	assert.Equal(t, []string{EventSignedIn}, events)

	_, err = c.Auth.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", sessionAuth)

	require.NoError(t, c.Auth.SignOut(context.Background()))
	assert.Equal(t, []string{EventSignedIn, EventSignedOut}, events)

	// Without a token the session resolves to nil locally.
	session, err = c.Auth.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestWriteSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "RES_002", "message": "a project with this slug already exists"},
		})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, APIKey: "key"})
	require.NoError(t, err)

	err = c.Records.DeleteProject(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "a project with this slug already exists", err.Error())
}
