package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	barberRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/barber"
	"github.com/acolella/BarberShop-BookingService/pkg/ptr"
)

// UseCase use case для получения свободных слотов барбера на дату
type UseCase struct {
	bookingRepo BookingRepository
	barberRepo  BarberRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		barberRepo:  barberRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, date=%s",
		req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 3. Генерируем кандидатные слоты рабочего дня
	candidates, err := generateTimeSlots(domain.OpenTime, domain.CloseTime, domain.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Получаем подтверждённые бронирования барбера на эту дату
	// Слот занимают только confirmed - отменённые и ожидающие не учитываются
	bookings, err := uc.bookingRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date, ptr.Ptr(domain.StatusConfirmed))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Убираем занятые слоты (точное совпадение времени начала)
	slots := filterOccupiedSlots(candidates, bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for barber=%d, date=%s",
		len(slots), len(candidates), req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		BarberID:   barber.ID,
		BarberName: barber.Name,
		Slots:      slots,
	}, nil
}
