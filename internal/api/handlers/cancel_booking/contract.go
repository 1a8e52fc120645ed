package cancel_booking

import (
	"context"

	"github.com/acolella/BarberShop-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, customerID, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
