package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/platform/metrics"
	"github.com/phrazzld/contacts-api/internal/platform/sqlite"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/testdb"
	"github.com/phrazzld/contacts-api/internal/validation"
)

const testTokenTTL = time.Hour

// testClock is a settable clock shared by the auth service and the resolver.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testServer struct {
	*httptest.Server
	clock *testClock
}

// newTestServer wires the full application over an in-memory SQLite database.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testdb.NewSQLite(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	users := sqlite.NewUserStore(db, log)
	contacts := sqlite.NewContactStore(db, log)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	v := validation.New()
	m := metrics.New(prometheus.NewRegistry())

	authSvc, err := auth.NewService(users, hasher, v, testTokenTTL, log,
		auth.WithClock(clock.Now),
		auth.WithLoginRecorder(m))
	require.NoError(t, err)

	router := api.NewRouter(api.RouterDeps{
		Logger:      log,
		Metrics:     m,
		Resolver:    auth.NewTokenResolver(users, clock.Now),
		Auth:        authSvc,
		Users:       service.NewUserService(users, hasher, v, log),
		Contacts:    service.NewContactService(contacts, v, log),
		BasePath:    "/api",
		TokenHeader: "X-API-Token",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, clock: clock}
}

// envelope mirrors shared.WebResponse with a raw data payload.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors *string         `json:"errors"`
}

// do sends a request with an optional JSON body and token, and decodes the envelope.
func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-API-Token", token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (s *testServer) register(t *testing.T, username, password, name string) {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": username,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusOK, status, "register %s: %v", username, env.Errors)
}

func (s *testServer) login(t *testing.T, username, password string) auth.TokenResponse {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, "login %s: %v", username, env.Errors)

	var token auth.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &token))
	return token
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
