package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет, что новый момент бронирования ещё не прошёл
func validateNotInPast(date time.Time, startTime types.TimeString, now time.Time) error {
	t, err := time.Parse(domain.TimeFormat, startTime.String())
	if err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	startsAt := time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, now.Location(),
	)

	if startsAt.Before(now) {
		return ErrDateInPast
	}

	return nil
}

// findSlotConflict ищет подтверждённое бронирование с точно таким же
// временем начала, игнорируя само переносимое бронирование
func findSlotConflict(bookings []*domain.Booking, startTime types.TimeString, excludeBookingID int64) *domain.Booking {
	for _, booking := range bookings {
		if booking.ID == excludeBookingID {
			continue
		}
		if !booking.BlocksSlot() {
			continue
		}
		if booking.StartTime == startTime {
			return booking
		}
	}
	return nil
}
