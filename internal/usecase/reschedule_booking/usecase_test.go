package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	bookingRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/booking"
	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// --- Моки ---

type mockBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	existing  []*domain.Booking
	updateErr error
	updated   *domain.Booking
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return m.booking, m.getErr
}

func (m *mockBookingRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.existing, nil
}

func (m *mockBookingRepo) Update(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	updated := *b
	updated.UpdatedAt = time.Now()
	m.updated = &updated
	return &updated, nil
}

type mockBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (m *mockBarberRepo) GetByID(_ context.Context, _ int64) (*domain.Barber, error) {
	return m.barber, m.err
}

type mockServiceRepo struct {
	service *domain.Service
	err     error
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return m.service, m.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Фикстуры ---

type fixture struct {
	bookingRepo *mockBookingRepo
	barberRepo  *mockBarberRepo
	serviceRepo *mockServiceRepo
	uc          *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		bookingRepo: &mockBookingRepo{booking: existingBooking()},
		barberRepo:  &mockBarberRepo{barber: &domain.Barber{ID: 2, Name: "Иван Петров", Active: true}},
		serviceRepo: &mockServiceRepo{service: &domain.Service{ID: 3, Name: "Стрижка", Price: 1500}},
	}
	f.uc = NewUseCase(f.bookingRepo, f.barberRepo, f.serviceRepo, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           10,
		CustomerID:   1,
		BarberID:     2,
		ServiceID:    3,
		BookingDate:  time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "11:00",
		Status:       domain.StatusConfirmed,
		ServiceName:  "Стрижка",
		ServicePrice: 1500,
	}
}

func validRequest() *Request {
	return &Request{
		CustomerID: 1,
		BookingID:  10,
		BarberID:   2,
		ServiceID:  3,
		Date:       time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("14:00"),
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), resp.BookingDate)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestExecute_StatusPreserved(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.booking.Status = domain.StatusPending

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Перенос не меняет статус
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_ForeignBookingLooksNotFound(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CustomerID = 99

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, f.bookingRepo.updated)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.booking = nil
	f.bookingRepo.getErr = bookingRepo.ErrBookingNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledCannotBeRescheduled(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.booking.Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_CompletedCannotBeRescheduled(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.booking.Status = domain.StatusCompleted

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_NewSlotTaken(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.existing = []*domain.Booking{
		{ID: 20, BarberID: 2, StartTime: "14:00", Status: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_OwnSlotNotConflict(t *testing.T) {
	// Перенос на собственный текущий слот: в выборке только само бронирование
	f := newFixture(t)
	f.bookingRepo.existing = []*domain.Booking{f.bookingRepo.booking}

	req := validRequest()
	req.Date = f.bookingRepo.booking.BookingDate
	req.StartTime = f.bookingRepo.booking.StartTime

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_PastDateTime(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.updateErr = bookingRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ServiceDataRefreshed(t *testing.T) {
	f := newFixture(t)
	f.serviceRepo.service = &domain.Service{ID: 5, Name: "Бритьё", Price: 900}

	req := validRequest()
	req.ServiceID = 5

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Бритьё", resp.ServiceName)
	assert.Equal(t, float64(900), resp.ServicePrice)
}
