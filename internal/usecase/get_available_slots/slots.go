package get_available_slots

import (
	"github.com/acolella/BarberShop-BookingService/internal/domain"
	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// generateTimeSlots генерирует список всех кандидатных слотов рабочего дня:
// от openTime (включительно) до closeTime (исключительно) с фиксированным
// шагом slotDuration. Слот попадает в результат, если его НАЧАЛО строго
// раньше closeTime - слот, начинающийся ровно в closeTime, не включается.
// Если closeTime <= openTime, результат пуст.
func generateTimeSlots(openTime, closeTime types.TimeString, slotDuration int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	currentSlot := openTime
	for currentSlot.IsBefore(closeTime) {
		slots = append(slots, currentSlot)

		next, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}

		// AddMinutes заворачивается через полночь; завернувшееся значение
		// оказывается раньше currentSlot и цикл корректно завершается
		if !next.IsAfter(currentSlot) {
			break
		}
		currentSlot = next
	}

	return slots, nil
}

// filterOccupiedSlots убирает из кандидатов слоты, занятые подтверждёнными
// бронированиями. Сравнение - строгое равенство времени начала, не пересечение
// интервалов: бронирование на 10:15 не блокирует ни слот 10:00, ни слот 10:30.
// Порядок кандидатов сохраняется; в результат попадают только свободные слоты.
func filterOccupiedSlots(candidates []types.TimeString, bookings []*domain.Booking) []Slot {
	occupied := make(map[types.TimeString]struct{}, len(bookings))
	for _, booking := range bookings {
		if booking.BlocksSlot() {
			occupied[booking.StartTime] = struct{}{}
		}
	}

	available := make([]Slot, 0, len(candidates))
	for _, candidate := range candidates {
		if _, taken := occupied[candidate]; taken {
			continue
		}
		available = append(available, Slot{
			StartTime: candidate,
			Available: true,
		})
	}

	return available
}
