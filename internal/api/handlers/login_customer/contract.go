package login_customer

import (
	"context"

	"github.com/acolella/BarberShop-BookingService/internal/service/customers/models"
)

type CustomersService interface {
	Authenticate(ctx context.Context, req *models.LoginRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
