package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или принадлежит другому клиенту (чужие бронирования не видны)
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("reschedule_booking: barber not found")

	// ErrBarberInactive возвращается, когда барбер не участвует в бронировании
	ErrBarberInactive = errors.New("reschedule_booking: barber is not active")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("reschedule_booking: service not found")

	// ErrCannotReschedule возвращается, когда бронирование нельзя перенести
	// (отменено или завершено)
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrDateInPast возвращается, когда новый момент бронирования уже прошёл
	ErrDateInPast = errors.New("reschedule_booking: booking time is in the past")

	// ErrSlotTaken возвращается, когда новый слот уже занят
	ErrSlotTaken = errors.New("reschedule_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
