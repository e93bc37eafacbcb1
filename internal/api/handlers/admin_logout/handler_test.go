package admin_logout

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/api/middleware"
	"github.com/m04kA/SpaBookingService/internal/service/auth/models"
)

type fakeAuth struct {
	got *models.LogoutRequest
	err error
}

func (f *fakeAuth) Logout(_ context.Context, req *models.LogoutRequest) error {
	f.got = req
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_ClearsCookie(t *testing.T) {
	svc := &fakeAuth{}
	h := NewHandler(svc, handlers.SessionCookie{Name: "spa_admin_session"}, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
	r = r.WithContext(middleware.WithSession(r.Context(), &middleware.Session{AdminID: 4, Username: "admin", SessionID: "sid"}))
	w := httptest.NewRecorder()
	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(4), svc.got.AdminID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "spa_admin_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHandler_NoSession(t *testing.T) {
	svc := &fakeAuth{}
	h := NewHandler(svc, handlers.SessionCookie{Name: "spa_admin_session"}, nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, svc.got)
}

func TestHandler_RevokeFails(t *testing.T) {
	svc := &fakeAuth{err: errors.New("auth: internal error")}
	h := NewHandler(svc, handlers.SessionCookie{Name: "spa_admin_session"}, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
	r = r.WithContext(middleware.WithSession(r.Context(), &middleware.Session{AdminID: 4, Username: "admin", SessionID: "sid"}))
	w := httptest.NewRecorder()
	h.Handle(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Logout failed")
	require.Len(t, w.Result().Cookies(), 1)
}
