package catalog

import (
	"context"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
)

type BarberRepository interface {
	ListActive(ctx context.Context) ([]*domain.Barber, error)
}

type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
