// Package apiclient is the authenticated HTTP client the back-office
// front-ends use. It attaches the stored access token to every request and,
// on a 401, performs one refresh-then-retry cycle before giving up. A 401
// from the login route, a missing refresh token, or a failed refresh all
// surface the original error to the caller.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/me1pik/admin-backoffice/credentials"
)

const (
	defaultLoginPath   = "/admin/auth/login"
	defaultRefreshPath = "/admin/auth/refresh"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	store      credentials.Store
	loginPath  string
	log        zerolog.Logger

	// At most one refresh call may be in flight. Concurrent 401s wait for
	// the first caller's result instead of issuing their own refresh.
	refreshMu  sync.Mutex
	refreshing *refreshCall
}

type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

type Option func(*Client)

// WithHTTPClient overrides the underlying transport (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger enables debug logging of the refresh protocol.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithLoginPath overrides the path whose 401 responses never trigger a
// refresh.
func WithLoginPath(path string) Option {
	return func(c *Client) {
		c.loginPath = path
	}
}

func New(baseURL string, store credentials.Store, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		store:      store,
		loginPath:  defaultLoginPath,
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// do runs one request lifecycle: attempt, and on a 401 from a non-login path
// a single refresh-then-retry. The retried attempt's outcome is final; if
// the refresh itself fails the caller receives the original error.
func (c *Client) do(ctx context.Context, method, path string, reqBody, out any) error {
	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("[Client do] failed to encode request body: %w", err)
		}
	}

	err := c.attempt(ctx, method, path, payload, out)
	if err == nil {
		return nil
	}

	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusUnauthorized || path == c.loginPath {
		return err
	}

	// The refresh flow resolves without a network call when no refresh
	// token is stored; the original 401 stands.
	if _, ok := c.store.Get(credentials.KeyRefreshToken); !ok {
		return err
	}

	if _, refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
		c.log.Debug().Err(refreshErr).Msg("token refresh failed")
		return err
	}

	// Retried exactly once; a second 401 is returned as-is.
	return c.attempt(ctx, method, path, payload, out)
}

// attempt performs a single HTTP exchange with the current access token.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("[Client attempt] failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken, ok := c.store.Get(credentials.KeyAccessToken); ok {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("[Client attempt] %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("[Client attempt] failed to decode response: %w", err)
	}
	return nil
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token. Concurrent callers share a single in-flight exchange.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	c.refreshMu.Lock()
	if c.refreshing != nil {
		call := c.refreshing
		c.refreshMu.Unlock()
		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	c.refreshing = call
	c.refreshMu.Unlock()

	call.token, call.err = c.doRefresh(ctx)
	close(call.done)

	c.refreshMu.Lock()
	c.refreshing = nil
	c.refreshMu.Unlock()

	return call.token, call.err
}

func (c *Client) doRefresh(ctx context.Context) (string, error) {
	refreshToken, ok := c.store.Get(credentials.KeyRefreshToken)
	if !ok {
		return "", fmt.Errorf("[Client doRefresh] no refresh token in store")
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return "", fmt.Errorf("[Client doRefresh] failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+defaultRefreshPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("[Client doRefresh] failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("[Client doRefresh] refresh call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", parseAPIError(resp)
	}

	var result struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("[Client doRefresh] failed to decode response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("[Client doRefresh] refresh response missing access token")
	}

	c.store.Set(credentials.KeyAccessToken, result.AccessToken, credentials.WithTTL(credentials.AccessTokenTTL))
	c.log.Debug().Msg("access token refreshed")
	return result.AccessToken, nil
}
