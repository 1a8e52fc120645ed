package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testNotification() BookingNotification {
	return BookingNotification{
		BookingID:   777,
		CustomerID:  1,
		BarberName:  "Иван Петров",
		ServiceName: "Стрижка",
		Date:        "2025-10-15",
		StartTime:   "10:00",
	}
}

func TestSendBookingConfirmed_Success(t *testing.T) {
	var gotPath string
	var gotBody BookingNotification

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendBookingConfirmed(context.Background(), testNotification())
	require.NoError(t, err)

	assert.Equal(t, "/internal/notifications/booking-confirmed", gotPath)
	assert.Equal(t, int64(777), gotBody.BookingID)
	assert.Equal(t, "Иван Петров", gotBody.BarberName)
	assert.Equal(t, "10:00", gotBody.StartTime)
}

func TestSendBookingConfirmed_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendBookingConfirmed(context.Background(), testNotification())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSendBookingConfirmed_ServerUnavailable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, nopLogger{})

	err := client.SendBookingConfirmed(context.Background(), testNotification())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, NewNoop().SendBookingConfirmed(context.Background(), testNotification()))
}
