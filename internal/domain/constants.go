package domain

import "github.com/acolella/BarberShop-BookingService/pkg/types"

// Operating hours of the shop. Slots are generated from OpenTime (inclusive)
// up to CloseTime (exclusive) with a fixed SlotDurationMinutes step.
const (
	OpenTime  types.TimeString = "09:00"
	CloseTime types.TimeString = "18:00"

	SlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength    = 500
	MinPasswordLength = 8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses список статусов, занимающих слот
// Используется при подсчёте доступных слотов: подтверждённые бронирования
// блокируют слот, отменённые/завершённые/ожидающие - нет
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
