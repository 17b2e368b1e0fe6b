package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/bizadmin/internal/client/repositories/storage"
	"github.com/dmitrijs2005/bizadmin/internal/client/session"
	"github.com/dmitrijs2005/bizadmin/internal/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

/*************
 * fake backend
 *************/

type backend struct {
	mux     *http.ServeMux
	srv     *httptest.Server
	mu      sync.Mutex
	calls   map[string]int
	headers map[string][]http.Header
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{mux: http.NewServeMux(), calls: map[string]int{}, headers: map[string][]http.Header{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[r.URL.Path]++
		b.headers[r.URL.Path] = append(b.headers[r.URL.Path], r.Header.Clone())
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) count(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

func (b *backend) headersFor(path string) []http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]http.Header(nil), b.headers[path]...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requireToken answers 200 {"ok":true} when the request carries want, and
// 401 {"message": "Token expired"} otherwise.
func requireToken(want string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(common.TokenHeaderName) != want {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func refreshOK(newToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": newToken})
	}
}

/*************
 * helpers
 *************/

func newStore(t *testing.T, key string, cred *session.Credential) (*session.Store, *storage.MemoryRepository) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	if cred != nil {
		raw, err := json.Marshal(map[string]any{"state": cred})
		require.NoError(t, err)
		require.NoError(t, repo.Set(context.Background(), key, raw))
	}
	return session.NewStore(repo, nil), repo
}

type endedRecorder struct {
	mu      sync.Mutex
	reasons []Reason
}

func (e *endedRecorder) hook(_ context.Context, r Reason) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reasons = append(e.reasons, r)
}

func (e *endedRecorder) get() []Reason {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Reason(nil), e.reasons...)
}

func staffCred(access, refresh string) *session.Credential {
	return &session.Credential{
		AccessToken:     access,
		RefreshToken:    refresh,
		Profile:         &session.Profile{AccessLevel: "staff"},
		IsAuthenticated: true,
	}
}

/*************
 * tests
 *************/

func TestDo_AttachesBothTokenHeaders(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A1"))
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))

	c := NewHTTPClient(b.srv.URL, store)
	var out struct{ OK bool }
	require.NoError(t, c.JSON(context.Background(), http.MethodGet, "/quotations", nil, &out))
	assert.True(t, out.OK)

	h := b.headersFor("/quotations")
	require.Len(t, h, 1)
	assert.Equal(t, "A1", h[0].Get("token"))
	assert.Equal(t, "Bearer A1", h[0].Get("Authorization"))
	assert.NotEmpty(t, h[0].Get(common.RequestIDHeaderName))
}

func TestDo_PublicEndpointCarriesNoCredentials(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/feedback/validate-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.URL.Query().Get("token"))
		writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
	})
	b.mux.HandleFunc("/feedback", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
	})
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	c := NewHTTPClient(b.srv.URL, store)

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/feedback/validate-token", Query: map[string][]string{"token": {"abc"}}})
	require.NoError(t, err)

	_, err = c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/feedback", Body: map[string]string{"text": "hi"}})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid token", apiErr.Message)

	for _, p := range []string{"/feedback/validate-token", "/feedback"} {
		for _, h := range b.headersFor(p) {
			assert.Empty(t, h.Get("token"), p)
			assert.Empty(t, h.Get("Authorization"), p)
		}
	}
	assert.Zero(t, b.count(common.StaffRefreshPath), "public endpoints never trigger a refresh")
}

func TestDo_RefreshesOnceAndReplays(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "R1", req.RefreshToken)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "A2"})
	})
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	m := NewMetrics(nil)
	c := NewHTTPClient(b.srv.URL, store, WithMetrics(m))

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})
	require.NoError(t, err)

	assert.Equal(t, 2, b.count("/quotations"), "original call plus exactly one replay")
	assert.Equal(t, 1, b.count(common.StaffRefreshPath))

	h := b.headersFor("/quotations")
	assert.Equal(t, "A2", h[1].Get("token"))
	assert.Equal(t, "Bearer A2", h[1].Get("Authorization"))
	assert.Equal(t, h[0].Get(common.RequestIDHeaderName), h[1].Get(common.RequestIDHeaderName))

	snap, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A2", snap.Credential.AccessToken)
	assert.Equal(t, "R1", snap.Credential.RefreshToken)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.refresh.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.replays))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("success")))
}

func TestDo_AuthFailureMessageWithoutStatus401(t *testing.T) {
	b := newBackend(t)
	var n atomic.Int32
	b.mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		if n.Add(1) == 1 {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "No token provided"})
			return
		}
		writeJSON(w, http.StatusOK, []string{})
	})
	b.mux.HandleFunc(common.StaffRefreshPath, refreshOK("A2"))
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))

	_, err := NewHTTPClient(b.srv.URL, store).Do(context.Background(), Request{Method: http.MethodGet, Path: "/tasks"})
	require.NoError(t, err)
	assert.Equal(t, 1, b.count(common.StaffRefreshPath))
	assert.Equal(t, 2, b.count("/tasks"))
}

func TestDo_SecondAuthFailureDoesNotLoop(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("never"))
	b.mux.HandleFunc(common.StaffRefreshPath, refreshOK("A2"))
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	ended := &endedRecorder{}

	_, err := NewHTTPClient(b.srv.URL, store, WithSessionEnded(ended.hook)).
		Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Token expired", apiErr.Message)
	require.ErrorIs(t, err, ErrUnauthorized)

	assert.Equal(t, 2, b.count("/quotations"))
	assert.Equal(t, 1, b.count(common.StaffRefreshPath))
	assert.Empty(t, ended.get(), "a rejected replay is not a refresh failure")
}

func TestDo_NoRefreshTokenEndsSessionWithoutRefreshCall(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, refreshOK("A2"))
	b.mux.HandleFunc(common.ClientRefreshPath, refreshOK("A2"))
	store, repo := newStore(t, common.LegacySessionStorageKey, staffCred("A1", ""))
	ended := &endedRecorder{}

	_, err := NewHTTPClient(b.srv.URL, store, WithSessionEnded(ended.hook)).
		Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})

	var refreshErr *RefreshError
	require.ErrorAs(t, err, &refreshErr)
	assert.Equal(t, ReasonTokenExpired, refreshErr.Reason)
	require.ErrorIs(t, err, ErrSessionEnded)
	require.ErrorIs(t, err, ErrNoRefreshToken)

	assert.Zero(t, b.count(common.StaffRefreshPath))
	assert.Zero(t, b.count(common.ClientRefreshPath))
	assert.Equal(t, 1, b.count("/quotations"))
	assert.Equal(t, []Reason{ReasonTokenExpired}, ended.get())

	m, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDo_ClientRoleUsesClientRefreshEndpoint(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, refreshOK("wrong"))
	b.mux.HandleFunc(common.ClientRefreshPath, refreshOK("A2"))

	cred := staffCred("A1", "R1")
	cred.Profile.AccessLevel = "client"
	store, _ := newStore(t, common.SessionStorageKey, cred)

	_, err := NewHTTPClient(b.srv.URL, store).Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})
	require.NoError(t, err)
	assert.Equal(t, 1, b.count(common.ClientRefreshPath))
	assert.Zero(t, b.count(common.StaffRefreshPath))
}

func TestDo_UnknownRoleDefaultsToStaffEndpoint(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, refreshOK("A2"))
	store, _ := newStore(t, common.SessionStorageKey, &session.Credential{AccessToken: "opaque-A1", RefreshToken: "opaque-R1"})

	_, err := NewHTTPClient(b.srv.URL, store).Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})
	require.NoError(t, err)
	assert.Equal(t, 1, b.count(common.StaffRefreshPath))
}

func TestDo_RefreshFailureEndsSession(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Refresh token revoked"})
	})
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	ended := &endedRecorder{}
	m := NewMetrics(nil)

	_, err := NewHTTPClient(b.srv.URL, store, WithSessionEnded(ended.hook), WithMetrics(m)).
		Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})

	var refreshErr *RefreshError
	require.ErrorAs(t, err, &refreshErr)
	assert.Equal(t, ReasonRefreshFailed, refreshErr.Reason)
	assert.Contains(t, err.Error(), "Refresh token revoked")

	assert.Equal(t, 1, b.count("/quotations"))
	assert.Equal(t, 1, b.count(common.StaffRefreshPath))
	assert.Equal(t, []Reason{ReasonRefreshFailed}, ended.get())

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "credentials must be wiped")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.refresh.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("session_ended")))
}

func TestDo_RefreshResponseWithoutTokenIsFailure(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))

	_, err := NewHTTPClient(b.srv.URL, store).Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})
	var refreshErr *RefreshError
	require.ErrorAs(t, err, &refreshErr)
	assert.Equal(t, ReasonRefreshFailed, refreshErr.Reason)
}

func TestDo_RefreshPersistsIntoOriginatingKey(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "A2", "refreshToken": "R2"})
	})
	store, repo := newStore(t, common.LegacySessionStorageKey, staffCred("A1", "R1"))

	_, err := NewHTTPClient(b.srv.URL, store).Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})
	require.NoError(t, err)

	current, err := repo.Get(context.Background(), common.SessionStorageKey)
	require.NoError(t, err)
	assert.Nil(t, current)

	snap, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, common.LegacySessionStorageKey, snap.Key)
	assert.Equal(t, "A2", snap.Credential.AccessToken)
	assert.Equal(t, "R2", snap.Credential.RefreshToken)
}

func TestDo_ConcurrentAuthFailuresShareOneRefresh(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/tasks", requireToken("A2"))
	b.mux.HandleFunc(common.StaffRefreshPath, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "A2"})
	})
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	c := NewHTTPClient(b.srv.URL, store)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/tasks"})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "request %d", i)
	}
	assert.Equal(t, 1, b.count(common.StaffRefreshPath))
}

// gatedStore holds the first Load until release is closed.
type gatedStore struct {
	*session.Store
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) Load(ctx context.Context) (session.Snapshot, bool, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.Store.Load(ctx)
}

func TestRefresh_CallersWithDifferentStaleTokensDoNotShareFlight(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc(common.StaffRefreshPath, refreshOK("A2"))
	inner, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	store := &gatedStore{Store: inner, entered: make(chan struct{}), release: make(chan struct{})}
	c := NewHTTPClient(b.srv.URL, store)

	// A late caller rejected with an older token; its flight is held in Load.
	type result struct {
		token string
		err   error
	}
	late := make(chan result, 1)
	go func() {
		tok, err := c.refresh(context.Background(), "A0")
		late <- result{tok, err}
	}()
	<-store.entered

	// A caller rejected with the stored token must get a fresh one, not A1.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tok, err := c.refresh(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "A2", tok)

	close(store.release)
	res := <-late
	require.NoError(t, res.err)
	assert.Equal(t, "A2", res.token, "the older token's flight reuses the stored one")
	assert.Equal(t, 1, b.count(common.StaffRefreshPath))
}

func TestDo_NonAuthServerErrors(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/quotations/42", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Quotation not found"})
	})
	b.mux.HandleFunc("/inventory", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	c := NewHTTPClient(b.srv.URL, store)

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations/42"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Quotation not found", apiErr.Message)
	require.ErrorIs(t, err, ErrServer)

	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/inventory"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 500", apiErr.Message)

	assert.Zero(t, b.count(common.StaffRefreshPath))
}

func TestDo_NetworkErrorIsNotAuthFailure(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc(common.StaffRefreshPath, refreshOK("A2"))
	url := b.srv.URL
	b.srv.Close()

	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))
	_, err := NewHTTPClient(url, store).Do(context.Background(), Request{Method: http.MethodGet, Path: "/quotations"})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.ErrorIs(t, err, ErrNetwork)
	assert.Zero(t, b.count(common.StaffRefreshPath))

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ok, "network errors must not wipe the session")
}

func TestDo_TimeoutIsNetworkError(t *testing.T) {
	b := newBackend(t)
	release := make(chan struct{})
	b.mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))

	_, err := NewHTTPClient(b.srv.URL, store, WithTimeout(50*time.Millisecond)).
		Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})

	require.ErrorIs(t, err, ErrNetwork)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDo_SkipAuthSendsNoTokenAndDoesNotRefresh(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc(common.StaffLoginPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("token"))
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})
	store, _ := newStore(t, common.SessionStorageKey, staffCred("A1", "R1"))

	_, err := NewHTTPClient(b.srv.URL, store).
		Do(context.Background(), Request{Method: http.MethodPost, Path: common.StaffLoginPath, SkipAuth: true})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, b.count(common.StaffRefreshPath))
}

func TestDo_InvalidRequest(t *testing.T) {
	store, _ := newStore(t, common.SessionStorageKey, nil)
	c := NewHTTPClient("http://127.0.0.1:1", store)

	_, err := c.Do(context.Background(), Request{Path: "/x"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = c.Do(context.Background(), Request{Method: http.MethodGet})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/x", Body: make(chan int)})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDo_NoStoredSessionSendsAnonymously(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	store, _ := newStore(t, common.SessionStorageKey, nil)

	resp, err := NewHTTPClient(b.srv.URL+"/", store).Do(context.Background(), Request{Method: http.MethodGet, Path: "health"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.Status)

	var out map[string]any
	require.NoError(t, resp.Decode(&out))
	assert.Nil(t, out)
}

func TestBuildURL(t *testing.T) {
	c := NewHTTPClient("http://api/v1/", nil)
	assert.Equal(t, "http://api/v1/quotations", c.buildURL("/quotations", nil))
	assert.Equal(t, "http://api/v1/a?x=1", c.buildURL("a", map[string][]string{"x": {"1"}}))
	assert.Equal(t, "http://api/v1/a?y=2&x=1", c.buildURL("/a?y=2", map[string][]string{"x": {"1"}}))
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "/signin?reason=token_expired", SignInPath(ReasonTokenExpired))
	assert.Equal(t, "/auth/refresh", RefreshPath(session.RoleStaff))
	assert.Equal(t, "/client-auth/refresh", RefreshPath(session.RoleClient))

	cause := errors.New("dial tcp: refused")
	netErr := &NetworkError{Method: "GET", Path: "/x", Err: cause}
	assert.ErrorIs(t, netErr, cause)
	assert.Contains(t, netErr.Error(), "GET /x")

	apiErr := &APIError{Method: "PATCH", Path: "/q/1/status", Status: 409, Message: "conflict"}
	assert.Equal(t, "PATCH /q/1/status: HTTP 409: conflict", apiErr.Error())
	assert.NotErrorIs(t, apiErr, ErrUnauthorized)
}
