package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/acolella/BarberShop-BookingService/internal/infra/storage/booking"
	"github.com/acolella/BarberShop-BookingService/internal/service/bookings/models"
)

// Service сервис просмотра и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	log         Logger
}

func New(bookingRepo BookingRepository, log Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		log:         log,
	}
}

// GetByID возвращает бронирование по ID.
// Чужие бронирования не видны: на несовпадение владельца отвечаем так же,
// как на несуществующий ID.
func (s *Service) GetByID(ctx context.Context, customerID, bookingID int64) (*models.BookingResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking ID must be positive", ErrInvalidInput)
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("[bookings.GetByID] Failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get booking: %v", ErrInternal, err)
	}

	if b.CustomerID != customerID {
		s.log.Warn("[bookings.GetByID] Customer %d requested foreign booking %d", customerID, bookingID)
		return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
	}

	return models.FromDomainBooking(b), nil
}

// GetCustomerBookings возвращает бронирования клиента с опциональными фильтрами
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customer ID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookingsList, err := s.bookingRepo.GetByCustomerWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("[bookings.GetCustomerBookings] Failed to list bookings for customer %d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - failed to list bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookingsList), nil
}

// UpdateStatus переводит бронирование в указанный статус.
// Администраторская операция: владелец не проверяется, допустим любой
// валидный статус, включая откат отмены.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status string) (*models.BookingResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking ID must be positive", ErrInvalidInput)
	}

	domainStatus, err := models.ToDomainBookingStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domainStatus); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("[bookings.UpdateStatus] Failed to update booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to update booking: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.log.Error("[bookings.UpdateStatus] Failed to reload booking %d after update: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to reload booking: %v", ErrInternal, err)
	}

	s.log.Info("[bookings.UpdateStatus] Booking %d status set to %s", bookingID, domainStatus)

	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование клиента.
// Отмена мягкая: статус переводится в cancelled, запись остаётся в истории.
func (s *Service) Cancel(ctx context.Context, customerID, bookingID int64) (*models.BookingResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking ID must be positive", ErrInvalidInput)
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("[bookings.Cancel] Failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to get booking: %v", ErrInternal, err)
	}

	if b.CustomerID != customerID {
		s.log.Warn("[bookings.Cancel] Customer %d tried to cancel foreign booking %d", customerID, bookingID)
		return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
	}

	if !b.CanBeCancelled() {
		return nil, fmt.Errorf("%w: booking %d has status %s", ErrCannotCancel, bookingID, b.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		s.log.Error("[bookings.Cancel] Failed to cancel booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to cancel booking: %v", ErrInternal, err)
	}

	// Перечитываем для актуальных status / cancelled_at / updated_at
	cancelled, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.log.Error("[bookings.Cancel] Failed to reload booking %d after cancel: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to reload booking: %v", ErrInternal, err)
	}

	s.log.Info("[bookings.Cancel] Booking %d cancelled by customer %d", bookingID, customerID)

	return models.FromDomainBooking(cancelled), nil
}
