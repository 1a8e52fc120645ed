package customers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	"github.com/acolella/BarberShop-BookingService/internal/infra/storage/customer"
	"github.com/acolella/BarberShop-BookingService/internal/service/customers/models"
)

var phoneRegexp = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)

// Service регистрация и аутентификация клиентов
type Service struct {
	customerRepo CustomerRepository
	log          Logger
}

func New(customerRepo CustomerRepository, log Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		log:          log,
	}
}

// Register регистрирует нового клиента
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.CustomerResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("[customers.Register] Failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	created, err := s.customerRepo.Create(ctx, &domain.Customer{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, customer.ErrEmailTaken) {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
		}
		s.log.Error("[customers.Register] Failed to create customer: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to create customer: %v", ErrInternal, err)
	}

	s.log.Info("[customers.Register] Customer %d registered", created.ID)

	return models.FromDomainCustomer(created), nil
}

// Authenticate проверяет email и пароль клиента
func (s *Service) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.CustomerResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	found, err := s.customerRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.log.Error("[customers.Authenticate] Failed to get customer by email: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - failed to get customer: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("[customers.Authenticate] Wrong password for customer %d", found.ID)
		return nil, ErrInvalidCredentials
	}

	return models.FromDomainCustomer(found), nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" || !phoneRegexp.MatchString(phone) {
		return fmt.Errorf("%w: valid phone is required", ErrInvalidInput)
	}

	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	if req.Password != req.PasswordConfirm {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	return nil
}
