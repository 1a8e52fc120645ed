package domain

import (
	"time"

	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a single appointment at the barber shop
type Booking struct {
	ID         int64
	CustomerID int64
	BarberID   int64
	ServiceID  int64

	BookingDate time.Time        // calendar date, time component ignored
	StartTime   types.TimeString // "HH:MM"
	Status      BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	Notes *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot returns true if the booking occupies its time slot.
// Only confirmed bookings make a slot unavailable - pending, completed
// and cancelled bookings do not.
func (b *Booking) BlocksSlot() bool {
	for _, s := range BlockingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// StartsAt returns the combined date and start time of the booking
func (b *Booking) StartsAt() time.Time {
	t, err := time.Parse(TimeFormat, b.StartTime.String())
	if err != nil {
		return b.BookingDate
	}
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		t.Hour(), t.Minute(), 0, 0, b.BookingDate.Location(),
	)
}

// CustomerBookingsFilter фильтр для получения бронирований клиента
type CustomerBookingsFilter struct {
	CustomerID int64          // Обязательный параметр
	Date       *time.Time     // Фильтр по дате (опционально)
	BarberID   *int64         // Фильтр по барберу (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
}
