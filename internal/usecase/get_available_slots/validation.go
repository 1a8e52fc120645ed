package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
// Дата намеренно НЕ проверяется на "не в прошлом": эндпоинт позволяет
// смотреть занятость и за прошедшие даты
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
