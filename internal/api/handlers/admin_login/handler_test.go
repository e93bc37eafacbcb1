package admin_login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SpaBookingService/internal/service/auth"
	"github.com/m04kA/SpaBookingService/internal/service/auth/models"
)

type fakeAuth struct {
	resp *models.LoginResponse
	err  error
}

func (f *fakeAuth) Login(context.Context, *models.LoginRequest) (*models.LoginResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var cookie = handlers.SessionCookie{Name: "spa_admin_session", Secure: true}

func login(t *testing.T, svc *fakeAuth) (*httptest.ResponseRecorder, handlers.Response) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader("username=admin&password=s3cret"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	NewHandler(svc, cookie, nopLogger{}).Handle(w, r)

	var resp handlers.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeAuth{resp: &models.LoginResponse{
		Token: "signed", AdminID: 1, Username: "admin", ExpiresAt: time.Now().Add(time.Hour),
	}}

	w, resp := login(t, svc)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "admin", resp.Username)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "spa_admin_session", cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestHandler_Failures(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{auth.ErrMissingCredentials, http.StatusBadRequest, msgMissingCredentials},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
		{errors.New("boom"), http.StatusInternalServerError, msgLoginError},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			w, resp := login(t, &fakeAuth{err: tt.err})

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}
