package get_available_slots

import (
	"time"

	"github.com/acolella/BarberShop-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID int64     // ID барбера
	Date     time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком свободных слотов
// Содержит ТОЛЬКО свободные слоты - занятые не включаются вовсе
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	BarberID   int64     // ID барбера
	BarberName string    // Имя барбера
	Slots      []Slot    // Список свободных слотов, по возрастанию времени
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Всегда true: в ответ попадают только свободные слоты
}
