package reschedule_booking

import (
	"time"

	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
// Позволяет сменить барбера, услугу, дату и время; статус не меняется
type Request struct {
	CustomerID int64            // ID клиента (из слоя аутентификации)
	BookingID  int64            // ID переносимого бронирования
	BarberID   int64            // Новый (или прежний) барбер
	ServiceID  int64            // Новая (или прежняя) услуга
	Date       time.Time        // Новая дата
	StartTime  types.TimeString // Новое время начала
	Notes      *string          // Заметки (опционально, nil - оставить прежние)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID          int64
	CustomerID  int64
	BarberID    int64
	ServiceID   int64
	BookingDate time.Time
	StartTime   types.TimeString
	Status      string

	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
