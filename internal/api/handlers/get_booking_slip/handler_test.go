package get_booking_slip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SpaBookingService/internal/service/bookings"
)

type fakeService struct{}

func (fakeService) Slip(_ context.Context, id int64) ([]byte, string, error) {
	if id != 7 {
		return nil, "", bookings.ErrBookingNotFound
	}
	return []byte("%PDF-1.3 slip"), "booking-TMS20250601007.pdf", nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}/slip", NewHandler(fakeService{}, nopLogger{}).Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_Slip(t *testing.T) {
	w := serve("/api/v1/admin/bookings/7/slip")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "booking-TMS20250601007.pdf")
	assert.Equal(t, "%PDF-1.3 slip", w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve("/api/v1/admin/bookings/8/slip").Code)
	assert.Equal(t, http.StatusBadRequest, serve("/api/v1/admin/bookings/abc/slip").Code)
}
