package create_booking

import (
	"time"

	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента (из слоя аутентификации)
	BarberID   int64            // ID барбера
	ServiceID  int64            // ID услуги
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала (например, "10:00")
	Notes      *string          // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	CustomerID  int64            // ID клиента
	BarberID    int64            // ID барбера
	ServiceID   int64            // ID услуги
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	Status      string           // Статус бронирования

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
