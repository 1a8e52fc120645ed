package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/acolella/BarberShop-BookingService/internal/domain"
	barberRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/barber"
	bookingRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/customer"
	serviceRepo "github.com/acolella/BarberShop-BookingService/internal/infra/storage/service"
	"github.com/acolella/BarberShop-BookingService/internal/integrations/notifier"
	"github.com/acolella/BarberShop-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	barberRepo   BarberRepository
	serviceRepo  ServiceRepository
	customerRepo CustomerRepository
	notifier     NotifierClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	customerRepo CustomerRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		barberRepo:   barberRepo,
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		notifier:     notifierClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в SERIALIZABLE транзакции
// с блокировкой строк (FOR UPDATE): два одновременных запроса на один слот
// не могут закоммититься оба. Частичный уникальный индекс в БД - второй
// рубеж той же гарантии.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, barber=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Проверяем существование и активность барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	if !barber.IsBookable() {
		uc.logger.Warn("CreateBooking: barber id=%d is not active", req.BarberID)
		return nil, ErrBarberInactive
	}

	// 5. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Проверяем, что момент бронирования не в прошлом
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Проверка занятости слота и вставка - атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем подтверждённые бронирования барбера на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByBarberAndDate(txCtx, req.BarberID, req.Date, ptr.Ptr(domain.StatusConfirmed))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем конфликт: подтверждённое бронирование с тем же временем начала
		if conflict := findSlotConflict(bookings, req.StartTime, 0); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s already taken by booking id=%d", req.StartTime, conflict.ID)
			return ErrSlotTaken
		}

		// 7.3. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			CustomerID:   req.CustomerID,
			BarberID:     req.BarberID,
			ServiceID:    req.ServiceID,
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			Status:       domain.StatusConfirmed,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс мог сработать раньше нашей проверки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken (unique index)", req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 8. Уведомление best-effort: ошибка логируется, бронирование уже создано
	notification := notifier.BookingNotification{
		BookingID:   result.ID,
		CustomerID:  result.CustomerID,
		BarberName:  barber.Name,
		ServiceName: result.ServiceName,
		Date:        result.BookingDate.Format(domain.DateFormat),
		StartTime:   result.StartTime.String(),
	}
	if err := uc.notifier.SendBookingConfirmed(ctx, notification); err != nil {
		uc.logger.Warn("CreateBooking: failed to send notification for booking id=%d: %v", result.ID, err)
	}

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
