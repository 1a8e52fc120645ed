package register_customer

import (
	"context"

	"github.com/acolella/BarberShop-BookingService/internal/service/customers/models"
)

type CustomersService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
