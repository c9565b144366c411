package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/me1pik/admin-backoffice/apiclient"
	"github.com/me1pik/admin-backoffice/credentials"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
)

const (
	staleToken   = "stale-access-token"
	freshToken   = "fresh-access-token"
	refreshToken = "refresh-token-1"
)

// testBackend is a scriptable API the client talks to. It counts refresh
// calls and serves a protected resource that accepts only freshToken.
type testBackend struct {
	t                *testing.T
	refreshCalls     atomic.Int32
	resourceCalls    atomic.Int32
	refreshStatus    int           // status the refresh endpoint answers with
	refreshEmptyBody bool          // answer 200 with no token field
	refreshGate      chan struct{} // when set, refresh responses wait for it
	loginStatus      int
	mu               sync.Mutex
	validTokens      map[string]bool
}

func newTestBackend(t *testing.T) *testBackend {
	return &testBackend{
		t:             t,
		refreshStatus: http.StatusOK,
		loginStatus:   http.StatusUnauthorized,
		validTokens:   map[string]bool{freshToken: true},
	}
}

func (b *testBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /admin/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if b.loginStatus != http.StatusOK {
			writeErr(w, b.loginStatus, "invalid credentials")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken":  freshToken,
			"refreshToken": refreshToken,
			"admin":        map[string]string{"id": "admin-1", "email": "admin@melpik.com"},
		})
	})

	mux.HandleFunc("POST /admin/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		b.refreshCalls.Add(1)
		if b.refreshGate != nil {
			<-b.refreshGate
		}

		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(b.t, refreshToken, req.RefreshToken)

		if b.refreshStatus != http.StatusOK {
			writeErr(w, b.refreshStatus, "refresh failed")
			return
		}
		if b.refreshEmptyBody {
			_ = json.NewEncoder(w).Encode(map[string]string{})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": freshToken})
	})

	mux.HandleFunc("GET /admin/products", func(w http.ResponseWriter, r *http.Request) {
		b.resourceCalls.Add(1)

		b.mu.Lock()
		ok := b.validTokens[bearerOf(r)]
		b.mu.Unlock()
		if !ok {
			writeErr(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":      []map[string]string{{"id": "p1", "name": "미니원피스"}},
			"total":      1,
			"totalPages": 1,
			"page":       1,
		})
	})

	mux.HandleFunc("GET /admin/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "resource not found")
	})

	return mux
}

func bearerOf(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) > len(prefix) {
		return h[len(prefix):]
	}
	return ""
}

func writeErr(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"message":    message,
		"error":      http.StatusText(status),
	})
}

type fixture struct {
	backend *testBackend
	server  *httptest.Server
	store   *credentials.MemStore
	client  *apiclient.Client
}

func setup(t *testing.T) *fixture {
	t.Helper()

	backend := newTestBackend(t)
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store := credentials.NewMemStore()
	return &fixture{
		backend: backend,
		server:  server,
		store:   store,
		client:  apiclient.New(server.URL, store),
	}
}

func (f *fixture) withTokens(access, refresh string) *fixture {
	if access != "" {
		f.store.Set(credentials.KeyAccessToken, access, credentials.WithTTL(credentials.AccessTokenTTL))
	}
	if refresh != "" {
		f.store.Set(credentials.KeyRefreshToken, refresh)
	}
	return f
}

func TestExpiredTokenIsRefreshedAndRequestRetriedOnce(t *testing.T) {
	f := setup(t).withTokens(staleToken, refreshToken)

	page, err := f.client.ListProducts(context.Background(), apiclient.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	// Exactly one refresh and exactly two resource attempts: the failed
	// original plus the retried request carrying the fresh token.
	require.Equal(t, int32(1), f.backend.refreshCalls.Load())
	require.Equal(t, int32(2), f.backend.resourceCalls.Load())

	// The fresh token was persisted for subsequent requests.
	stored, ok := f.store.Get(credentials.KeyAccessToken)
	require.True(t, ok)
	require.Equal(t, freshToken, stored)
}

func TestRetriedRequestNeverRefreshesTwice(t *testing.T) {
	f := setup(t).withTokens(staleToken, refreshToken)
	// Refresh succeeds but hands back a token the resource still rejects,
	// so the retried request also 401s.
	f.backend.mu.Lock()
	f.backend.validTokens = map[string]bool{}
	f.backend.mu.Unlock()

	_, err := f.client.ListProducts(context.Background(), apiclient.ListParams{})
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	require.Equal(t, int32(1), f.backend.refreshCalls.Load())
	require.Equal(t, int32(2), f.backend.resourceCalls.Load())
}

func TestLoginFailureNeverTriggersRefresh(t *testing.T) {
	f := setup(t).withTokens("", refreshToken)

	_, err := f.client.Login(context.Background(), "admin@melpik.com", "wrong")
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, int32(0), f.backend.refreshCalls.Load())
}

func TestMissingRefreshTokenPropagatesOriginalError(t *testing.T) {
	f := setup(t).withTokens(staleToken, "")

	_, err := f.client.ListProducts(context.Background(), apiclient.ListParams{})
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// The refresh flow resolved without any network call.
	require.Equal(t, int32(0), f.backend.refreshCalls.Load())
	require.Equal(t, int32(1), f.backend.resourceCalls.Load())
}

func TestFailedRefreshSurfacesOriginalError(t *testing.T) {
	f := setup(t).withTokens(staleToken, refreshToken)
	f.backend.refreshStatus = http.StatusInternalServerError

	_, err := f.client.ListProducts(context.Background(), apiclient.ListParams{})
	require.Error(t, err)

	// The caller sees the original 401, not the refresh endpoint's 500.
	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	require.Equal(t, int32(1), f.backend.refreshCalls.Load())
	require.Equal(t, int32(1), f.backend.resourceCalls.Load())
}

func TestRefreshResponseWithoutTokenSurfacesOriginalError(t *testing.T) {
	f := setup(t).withTokens(staleToken, refreshToken)
	f.backend.refreshEmptyBody = true

	_, err := f.client.ListProducts(context.Background(), apiclient.ListParams{})
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestConcurrent401sShareOneRefresh(t *testing.T) {
	f := setup(t).withTokens(staleToken, refreshToken)

	// Hold the refresh response until every caller's first attempt has
	// come back 401, so all of them are queued on the refresh at once.
	const callers = 8
	gate := make(chan struct{})
	f.backend.refreshGate = gate
	go func() {
		for f.backend.resourceCalls.Load() < callers {
			time.Sleep(time.Millisecond)
		}
		close(gate)
	}()

	var wg sync.WaitGroup
	errCh := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.client.ListProducts(context.Background(), apiclient.ListParams{})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// Every caller waited on the same in-flight exchange.
	require.Equal(t, int32(1), f.backend.refreshCalls.Load())
	require.Equal(t, int32(callers*2), f.backend.resourceCalls.Load())
}

func TestLoginStoresTokenPair(t *testing.T) {
	f := setup(t)
	f.backend.loginStatus = http.StatusOK

	admin, err := f.client.Login(context.Background(), "admin@melpik.com", "Password1")
	require.NoError(t, err)
	require.Equal(t, "admin-1", admin.ID)

	access, ok := f.store.Get(credentials.KeyAccessToken)
	require.True(t, ok)
	require.Equal(t, freshToken, access)

	stored, ok := f.store.Get(credentials.KeyRefreshToken)
	require.True(t, ok)
	require.Equal(t, refreshToken, stored)
}

func TestNotFoundIsTyped(t *testing.T) {
	f := setup(t).withTokens(freshToken, refreshToken)

	_, err := f.client.GetProduct(context.Background(), "missing-product")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.ErrNotFound))

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "resource not found", apiErr.Message)
}
