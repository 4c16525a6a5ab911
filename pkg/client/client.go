package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Config identifies the backend. Both fields are required; the
// process has no sensible fallback for either.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client is the typed facade over the portfolio backend. Subsystems:
// Records (entity CRUD), Auth (session), Storage (media uploads).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu    sync.RWMutex
	token string

	Records *Records
	Auth    *Auth
	Storage *Storage
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("client: API key is required")
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	c.Records = &Records{client: c}
	c.Auth = newAuth(c)
	c.Storage = &Storage{client: c}

	return c, nil
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// envelope is the server's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do issues one JSON request and decodes the envelope's data into
// out. A non-2xx status becomes an error carrying the server's
// message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	c.prepare(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

func (c *Client) prepare(req *http.Request) {
	req.Header.Set("X-API-Key", c.apiKey)
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) decode(resp *http.Response, out interface{}) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("client: unexpected response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode >= 400 || !env.Success {
		if env.Error != nil && env.Error.Message != "" {
			return fmt.Errorf("%s", env.Error.Message)
		}
		return fmt.Errorf("client: request failed with status %d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}

	return nil
}
