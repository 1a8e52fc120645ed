package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	bookingRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/booking"
	"github.com/acolella/BarberShop-BookingService/internal/service/bookings/models"
	"github.com/acolella/BarberShop-BookingService/pkg/ptr"
)

// --- Моки ---

type mockBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	list      []*domain.Booking
	listErr   error
	gotFilter domain.CustomerBookingsFilter

	cancelErr    error
	cancelCalled bool

	updateStatusErr error
	gotStatus       domain.BookingStatus
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return m.booking, m.getErr
}

func (m *mockBookingRepo) GetByCustomerWithFilter(_ context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	m.gotFilter = filter
	return m.list, m.listErr
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	m.gotStatus = status
	if m.booking != nil {
		m.booking.Status = status
	}
	return nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, _ int64) error {
	m.cancelCalled = true
	if m.cancelErr != nil {
		return m.cancelErr
	}
	if m.booking != nil {
		m.booking.Status = domain.StatusCancelled
		now := time.Now()
		m.booking.CancelledAt = &now
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           10,
		CustomerID:   1,
		BarberID:     2,
		ServiceID:    3,
		BookingDate:  time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		Status:       domain.StatusConfirmed,
		ServiceName:  "Стрижка",
		ServicePrice: 1500,
	}
}

// --- GetByID ---

func TestGetByID_Success(t *testing.T) {
	svc := New(&mockBookingRepo{booking: testBooking()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_ForeignBookingLooksNotFound(t *testing.T) {
	svc := New(&mockBookingRepo{booking: testBooking()}, nopLogger{})

	// Клиент 99 запрашивает бронирование клиента 1
	_, err := svc.GetByID(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := New(&mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := New(&mockBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --- GetCustomerBookings ---

func TestGetCustomerBookings_NoFilters(t *testing.T) {
	repo := &mockBookingRepo{list: []*domain.Booking{testBooking()}}
	svc := New(repo, nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), repo.gotFilter.CustomerID)
	assert.Nil(t, repo.gotFilter.Date)
	assert.Nil(t, repo.gotFilter.BarberID)
	assert.Nil(t, repo.gotFilter.Status)
}

func TestGetCustomerBookings_AllFilters(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := New(repo, nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 1,
		Date:       ptr.Ptr("2025-10-15"),
		BarberID:   ptr.Ptr(int64(2)),
		Status:     ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)

	require.NotNil(t, repo.gotFilter.Date)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), *repo.gotFilter.Date)
	require.NotNil(t, repo.gotFilter.BarberID)
	assert.Equal(t, int64(2), *repo.gotFilter.BarberID)
	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusCancelled, *repo.gotFilter.Status)
}

func TestGetCustomerBookings_InvalidDate(t *testing.T) {
	svc := New(&mockBookingRepo{}, nopLogger{})

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 1,
		Date:       ptr.Ptr("15.10.2025"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := New(&mockBookingRepo{}, nopLogger{})

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 1,
		Status:     ptr.Ptr("done"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerBookings_EmptyListNotNil(t *testing.T) {
	svc := New(&mockBookingRepo{}, nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: 1})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

// --- UpdateStatus ---

func TestUpdateStatus_Success(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking()}
	svc := New(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 10, "completed")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, repo.gotStatus)
	assert.Equal(t, "completed", resp.Status)
}

func TestUpdateStatus_RevertsCancellation(t *testing.T) {
	// Администратор может вернуть отменённое бронирование в confirmed
	b := testBooking()
	b.Status = domain.StatusCancelled
	repo := &mockBookingRepo{booking: b}
	svc := New(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 10, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking()}
	svc := New(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 10, "done")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.gotStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := New(&mockBookingRepo{updateStatusErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 10, "completed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_InvalidID(t *testing.T) {
	svc := New(&mockBookingRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 0, "completed")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --- Cancel ---

func TestCancel_Success(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking()}
	svc := New(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.True(t, repo.cancelCalled)
	assert.Equal(t, "cancelled", resp.Status)
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_ForeignBookingLooksNotFound(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking()}
	svc := New(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.False(t, repo.cancelCalled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	b := testBooking()
	b.Status = domain.StatusCancelled
	repo := &mockBookingRepo{booking: b}
	svc := New(repo, nopLogger{})

	// Повторная отмена - конфликт состояния, не no-op
	_, err := svc.Cancel(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelCalled)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	b := testBooking()
	b.Status = domain.StatusCompleted
	svc := New(&mockBookingRepo{booking: b}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := New(&mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
