package notifier

// BookingNotification данные уведомления о подтверждённом бронировании
type BookingNotification struct {
	BookingID   int64  `json:"bookingId"`
	CustomerID  int64  `json:"customerId"`
	BarberName  string `json:"barberName"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "10:00"
}
