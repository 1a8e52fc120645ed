package get_available_slots

import (
	"github.com/acolella/BarberShop-BookingService/internal/domain"
	getAvailableSlots "github.com/acolella/BarberShop-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse один временной слот
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string         `json:"date"`
	BarberID   int64          `json:"barberId"`
	BarberName string         `json:"barberName"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		BarberID:   resp.BarberID,
		BarberName: resp.BarberName,
		Slots:      slots,
	}
}
