package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	barberRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/barber"
	bookingRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/service"
	"github.com/acolella/BarberShop-BookingService/pkg/ptr"
)

// UseCase use case для переноса бронирования на другой слот
type UseCase struct {
	bookingRepo  BookingRepository
	barberRepo   BarberRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		barberRepo:   barberRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
// Перенос подчиняется тем же правилам, что и создание: новый момент
// не в прошлом, новый слот свободен; проверка и обновление атомарны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, customer=%d, barber=%d, service=%d, date=%s, time=%s",
		req.BookingID, req.CustomerID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бронирование; чужое бронирование неотличимо от несуществующего
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.CustomerID {
		uc.logger.Warn("RescheduleBooking: booking id=%d does not belong to customer id=%d",
			req.BookingID, req.CustomerID)
		return nil, ErrBookingNotFound
	}

	// 4. Проверяем, что бронирование можно перенести
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d cannot be rescheduled, status=%s",
			req.BookingID, booking.Status)
		return nil, ErrCannotReschedule
	}

	// 5. Проверяем существование и активность барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("RescheduleBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	if !barber.IsBookable() {
		uc.logger.Warn("RescheduleBooking: barber id=%d is not active", req.BarberID)
		return nil, ErrBarberInactive
	}

	// 6. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("RescheduleBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 7. Проверяем, что новый момент не в прошлом
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("RescheduleBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Проверка занятости нового слота и обновление - атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем подтверждённые бронирования нового барбера на новую дату (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByBarberAndDate(txCtx, req.BarberID, req.Date, ptr.Ptr(domain.StatusConfirmed))
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.2. Проверяем конфликт, игнорируя само переносимое бронирование:
		// перенос на собственный текущий слот - не конфликт
		if conflict := findSlotConflict(bookings, req.StartTime, booking.ID); conflict != nil {
			uc.logger.Warn("RescheduleBooking: slot %s already taken by booking id=%d", req.StartTime, conflict.ID)
			return ErrSlotTaken
		}

		// 8.3. Обновляем бронирование
		booking.BarberID = req.BarberID
		booking.ServiceID = req.ServiceID
		booking.BookingDate = req.Date
		booking.StartTime = req.StartTime
		booking.ServiceName = service.Name
		booking.ServicePrice = service.Price
		if req.Notes != nil {
			booking.Notes = req.Notes
		}

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleBooking: slot %s taken (unique index)", req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s %s",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.StartTime)

	return &Response{
		ID:           result.ID,
		CustomerID:   result.CustomerID,
		BarberID:     result.BarberID,
		ServiceID:    result.ServiceID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
