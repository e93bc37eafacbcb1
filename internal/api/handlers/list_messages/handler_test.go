package list_messages

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SpaBookingService/internal/service/messages"
	"github.com/m04kA/SpaBookingService/internal/service/messages/models"
)

type fakeService struct {
	got *models.ListMessagesRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListMessagesRequest) (*models.MessageListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.MessageListResponse{Messages: []models.MessageResponse{{ID: 3, Subject: "Prices", Status: "unread"}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_PassesFilters(t *testing.T) {
	svc := &fakeService{}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages?status=unread&limit=5&offset=10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"Prices"`)
	require.NotNil(t, svc.got)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "unread", *svc.got.Status)
	assert.Equal(t, 5, svc.got.Limit)
	assert.Equal(t, 10, svc.got.Offset)
}

func TestHandler_NoFilters(t *testing.T) {
	svc := &fakeService{}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Nil(t, svc.got.Status)
	assert.Zero(t, svc.got.Limit)
}

func TestHandler_InvalidParams(t *testing.T) {
	svc := &fakeService{}
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages?offset=-x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.got)

	svc.err = messages.ErrInvalidInput
	w = httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages?status=archived", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ServiceError(t *testing.T) {
	svc := &fakeService{err: errors.New("messages: internal error")}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
