package customers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	customerRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/customer"
	"github.com/acolella/BarberShop-BookingService/internal/service/customers/models"
)

// --- Моки ---

type mockCustomerRepo struct {
	created   *domain.Customer
	createErr error

	byEmail    *domain.Customer
	byEmailErr error
	gotEmail   string
}

func (m *mockCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *c
	created.ID = 5
	created.RegisteredAt = time.Now()
	m.created = &created
	return &created, nil
}

func (m *mockCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	m.gotEmail = email
	return m.byEmail, m.byEmailErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRegister() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:            "Анна Смирнова",
		Email:           "anna@example.com",
		Phone:           "+7 (912) 345-67-89",
		Password:        "s3cret-pass",
		PasswordConfirm: "s3cret-pass",
	}
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := New(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "anna@example.com", resp.Email)

	// Пароль хранится как bcrypt-хэш, не в открытом виде
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "s3cret-pass", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("s3cret-pass")))
}

func TestRegister_EmailNormalized(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := New(repo, nopLogger{})

	req := validRegister()
	req.Email = "  Anna@Example.COM "

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", repo.created.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := New(&mockCustomerRepo{createErr: customerRepo.ErrEmailTaken}, nopLogger{})

	_, err := svc.Register(context.Background(), validRegister())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := New(&mockCustomerRepo{}, nopLogger{})

	req := validRegister()
	req.PasswordConfirm = "another-pass"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"empty name", func(r *models.RegisterRequest) { r.Name = "  " }},
		{"empty email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"email without at", func(r *models.RegisterRequest) { r.Email = "anna.example.com" }},
		{"empty phone", func(r *models.RegisterRequest) { r.Phone = "" }},
		{"phone with letters", func(r *models.RegisterRequest) { r.Phone = "phone123" }},
		{"short password", func(r *models.RegisterRequest) {
			r.Password = "short"
			r.PasswordConfirm = "short"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(&mockCustomerRepo{}, nopLogger{})
			req := validRegister()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// --- Authenticate ---

func TestAuthenticate_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockCustomerRepo{byEmail: &domain.Customer{
		ID:           5,
		Email:        "anna@example.com",
		PasswordHash: string(hash),
	}}
	svc := New(repo, nopLogger{})

	resp, err := svc.Authenticate(context.Background(), &models.LoginRequest{
		Email:    "anna@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := New(&mockCustomerRepo{byEmail: &domain.Customer{PasswordHash: string(hash)}}, nopLogger{})

	_, err = svc.Authenticate(context.Background(), &models.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := New(&mockCustomerRepo{byEmailErr: customerRepo.ErrCustomerNotFound}, nopLogger{})

	// Незнакомый email неотличим от неверного пароля
	_, err := svc.Authenticate(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_EmailNormalized(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockCustomerRepo{byEmail: &domain.Customer{PasswordHash: string(hash)}}
	svc := New(repo, nopLogger{})

	_, err = svc.Authenticate(context.Background(), &models.LoginRequest{
		Email:    " Anna@Example.COM",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", repo.gotEmail)
}

func TestAuthenticate_MissingFields(t *testing.T) {
	svc := New(&mockCustomerRepo{}, nopLogger{})

	_, err := svc.Authenticate(context.Background(), &models.LoginRequest{Email: "anna@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Authenticate(context.Background(), &models.LoginRequest{Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
