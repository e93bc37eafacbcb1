package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/service/auth"
	"github.com/m04kA/SpaBookingService/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const cookieName = "spa_admin_session"

func sessionEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := GetSession(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(s.Username))
	})
}

// memorySessions хранилище сессий в памяти
type memorySessions struct {
	active map[string]bool
	err    error
}

func (m *memorySessions) Create(_ context.Context, s *domain.AdminSession) error {
	m.active[s.ID] = true
	return nil
}

func (m *memorySessions) IsActive(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.active[id], nil
}

func (m *memorySessions) Revoke(_ context.Context, id string) (bool, error) {
	ok := m.active[id]
	delete(m.active, id)
	return ok, nil
}

type nopActivity struct{}

func (nopActivity) Record(context.Context, domain.ActivityEntry) {}

func newAuthService(t *testing.T) (*auth.Service, *memorySessions, string, string) {
	t.Helper()
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	sessions := &memorySessions{active: map[string]bool{}}
	svc := auth.NewService(nil, sessions, tokens, nopActivity{}, nopLogger{})

	token, claims, err := tokens.Issue(3, "admin")
	require.NoError(t, err)
	require.NoError(t, sessions.Create(context.Background(), &domain.AdminSession{ID: claims.ID, AdminID: 3}))
	return svc, sessions, token, claims.ID
}

func TestAuth(t *testing.T) {
	svc, _, token, _ := newAuthService(t)
	h := Auth(svc, cookieName, nopLogger{})(sessionEcho(t))

	t.Run("cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", w.Body.String())
	})

	t.Run("bearer", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: cookieName, Value: token + "x"})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuth_TokenRejectedAfterLogout(t *testing.T) {
	svc, _, token, sessionID := newAuthService(t)
	h := Auth(svc, cookieName, nopLogger{})(sessionEcho(t))

	request := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	require.Equal(t, http.StatusOK, request().Code)

	err := svc.Logout(context.Background(), &models.LogoutRequest{AdminID: 3, Username: "admin", SessionID: sessionID})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request().Code)
}

func TestAuth_SessionStoreDown(t *testing.T) {
	svc, sessions, token, _ := newAuthService(t)
	sessions.err = errors.New("db down")
	h := Auth(svc, cookieName, nopLogger{})(sessionEcho(t))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestClientIP(t *testing.T) {
	var got string
	capture := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClientIP(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:51000"
	r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")

	ClientIP(false)(capture).ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "192.0.2.10", got)

	ClientIP(true)(capture).ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "203.0.113.5", got)
}

func TestRequestID(t *testing.T) {
	h := RequestID(nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, GetRequestID(r.Context()))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://spa.example.com"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	r.Header.Set("Origin", "https://spa.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://spa.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	r = httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type fakeRecorder struct {
	route  string
	status int
}

func (f *fakeRecorder) ObserveHTTPRequest(_ string, route string, status int, _ time.Duration) {
	f.route = route
	f.status = status
}

func TestMetricsMiddleware(t *testing.T) {
	rec := &fakeRecorder{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}/slip", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/42/slip", nil))

	assert.Equal(t, "/api/v1/admin/bookings/{bookingId}/slip", rec.route)
	assert.Equal(t, http.StatusNotFound, rec.status)
}
