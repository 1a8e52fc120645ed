package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	barberRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/barber"
	bookingRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/customer"
	serviceRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/service"
	"github.com/acolella/BarberShop-BookingService/internal/integrations/notifier"
	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// --- Моки ---

type mockBookingRepo struct {
	existing  []*domain.Booking
	getErr    error
	createErr error
	created   *domain.Booking
}

func (m *mockBookingRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.existing, m.getErr
}

func (m *mockBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *b
	created.ID = 777
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
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

type mockCustomerRepo struct {
	customer *domain.Customer
	err      error
}

func (m *mockCustomerRepo) GetByID(_ context.Context, _ int64) (*domain.Customer, error) {
	return m.customer, m.err
}

type mockNotifier struct {
	sent []notifier.BookingNotification
	err  error
}

func (m *mockNotifier) SendBookingConfirmed(_ context.Context, n notifier.BookingNotification) error {
	m.sent = append(m.sent, n)
	return m.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
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
	bookingRepo  *mockBookingRepo
	barberRepo   *mockBarberRepo
	serviceRepo  *mockServiceRepo
	customerRepo *mockCustomerRepo
	notifier     *mockNotifier
	txManager    *fakeTxManager
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		bookingRepo:  &mockBookingRepo{},
		barberRepo:   &mockBarberRepo{barber: &domain.Barber{ID: 2, Name: "Иван Петров", Active: true}},
		serviceRepo:  &mockServiceRepo{service: &domain.Service{ID: 3, Name: "Стрижка", Price: 1500}},
		customerRepo: &mockCustomerRepo{customer: &domain.Customer{ID: 1, Name: "Клиент"}},
		notifier:     &mockNotifier{},
		txManager:    &fakeTxManager{},
	}
	f.uc = NewUseCase(f.bookingRepo, f.barberRepo, f.serviceRepo, f.customerRepo, f.notifier, f.txManager, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		CustomerID: 1,
		BarberID:   2,
		ServiceID:  3,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(777), resp.ID)
	assert.Equal(t, int64(1), resp.CustomerID)
	assert.Equal(t, int64(2), resp.BarberID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, float64(1500), resp.ServicePrice)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, 1, f.txManager.calls)
}

func TestExecute_DenormalizesServiceData(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, f.bookingRepo.created)
	assert.Equal(t, "Стрижка", f.bookingRepo.created.ServiceName)
	assert.Equal(t, float64(1500), f.bookingRepo.created.ServicePrice)
	assert.Equal(t, domain.StatusConfirmed, f.bookingRepo.created.Status)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.existing = []*domain.Booking{
		{ID: 50, BarberID: 2, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_OtherSlotNotConflict(t *testing.T) {
	f := newFixture(t)
	// Занят другой слот и нестандартное время - ничего не блокируют
	f.bookingRepo.existing = []*domain.Booking{
		{ID: 50, BarberID: 2, StartTime: "10:30", Status: domain.StatusConfirmed},
		{ID: 51, BarberID: 2, StartTime: "10:15", Status: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingNotConflict(t *testing.T) {
	f := newFixture(t)
	f.bookingRepo.existing = []*domain.Booking{
		{ID: 50, BarberID: 2, StartTime: "10:00", Status: domain.StatusCancelled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// Конкурент успел вставить между проверкой и INSERT - индекс вернул 23505
	f := newFixture(t)
	f.bookingRepo.createErr = bookingRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_PastDateTime(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_PastTimeSameDay(t *testing.T) {
	// now = 2025-10-01 12:00, запись на 10:00 того же дня - в прошлом
	f := newFixture(t)

	req := validRequest()
	req.Date = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	req.StartTime = "10:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_FutureTimeSameDay(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	req.StartTime = "15:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture(t)
	f.customerRepo.customer = nil
	f.customerRepo.err = customerRepo.ErrCustomerNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_BarberNotFound(t *testing.T) {
	f := newFixture(t)
	f.barberRepo.barber = nil
	f.barberRepo.err = barberRepo.ErrBarberNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_BarberInactive(t *testing.T) {
	f := newFixture(t)
	f.barberRepo.barber = &domain.Barber{ID: 2, Name: "Иван Петров", Active: false}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberInactive)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture(t)
	f.serviceRepo.service = nil
	f.serviceRepo.err = serviceRepo.ErrServiceNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("notifier down")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(777), resp.ID)
}

func TestExecute_NotifierReceivesBookingData(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, int64(777), f.notifier.sent[0].BookingID)
	assert.Equal(t, "Иван Петров", f.notifier.sent[0].BarberName)
	assert.Equal(t, "Стрижка", f.notifier.sent[0].ServiceName)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"negative barber", func(r *Request) { r.BarberID = -1 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"notes too long", func(r *Request) {
			long := make([]byte, domain.MaxNotesLength+1)
			for i := range long {
				long[i] = 'x'
			}
			s := string(long)
			r.Notes = &s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
