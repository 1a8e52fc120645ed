package get_available_slots

import (
	"context"
	"time"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByBarberAndDate получает бронирования барбера на конкретную дату
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
