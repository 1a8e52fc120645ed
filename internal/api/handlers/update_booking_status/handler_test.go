package update_booking_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acolella/BarberShop-BookingService/internal/service/bookings"
	"github.com/acolella/BarberShop-BookingService/internal/service/bookings/models"
)

type mockService struct {
	resp *models.BookingResponse
	err  error

	gotID     int64
	gotStatus string
}

func (m *mockService) UpdateStatus(_ context.Context, bookingID int64, status string) (*models.BookingResponse, error) {
	m.gotID = bookingID
	m.gotStatus = status
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/internal/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)
	return r
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{resp: &models.BookingResponse{ID: 10, Status: "completed"}}
	router := newRouter(NewHandler(svc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/internal/bookings/10/status",
		strings.NewReader(`{"status":"completed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "completed", body.Status)

	assert.Equal(t, int64(10), svc.gotID)
	assert.Equal(t, "completed", svc.gotStatus)
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &mockService{err: bookings.ErrInvalidInput}
	router := newRouter(NewHandler(svc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/internal/bookings/10/status",
		strings.NewReader(`{"status":"done"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{err: bookings.ErrBookingNotFound}
	router := newRouter(NewHandler(svc, nopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/internal/bookings/42/status",
		strings.NewReader(`{"status":"completed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	router := newRouter(NewHandler(&mockService{}, nopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/internal/bookings/abc/status",
		strings.NewReader(`{"status":"completed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	router := newRouter(NewHandler(&mockService{}, nopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/internal/bookings/10/status",
		strings.NewReader(`{status`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
