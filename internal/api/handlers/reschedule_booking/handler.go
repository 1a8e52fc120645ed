package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/acolella/BarberShop-BookingService/internal/api/handlers"
	"github.com/acolella/BarberShop-BookingService/internal/api/middleware"
	rescheduleBooking "github.com/acolella/BarberShop-BookingService/internal/usecase/reschedule_booking"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgBarberNotFound     = "барбер не найден"
	msgBarberInactive     = "барбер не принимает записи"
	msgServiceNotFound    = "услуга не найдена"
	msgDateInPast         = "нельзя перенести запись на прошедшее время"
	msgCannotReschedule   = "бронирование нельзя перенести в текущем статусе"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.CustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found: customer_id=%d", bookingID, customerID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/%d - Slot taken: barber_id=%d, date=%s, time=%s",
				bookingID, req.BarberID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PUT /bookings/%d - Cannot reschedule: customer_id=%d", bookingID, customerID)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrBarberNotFound):
			h.logger.Warn("PUT /bookings/%d - Barber not found: barber_id=%d", bookingID, req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, rescheduleBooking.ErrBarberInactive):
			h.logger.Warn("PUT /bookings/%d - Barber inactive: barber_id=%d", bookingID, req.BarberID)
			handlers.RespondBadRequest(w, msgBarberInactive)

		case errors.Is(err, rescheduleBooking.ErrServiceNotFound):
			h.logger.Warn("PUT /bookings/%d - Service not found: service_id=%d", bookingID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, rescheduleBooking.ErrDateInPast):
			h.logger.Warn("PUT /bookings/%d - Date in past: date=%s, time=%s", bookingID, req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to reschedule booking: customer_id=%d, error=%v",
				bookingID, customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking rescheduled: customer_id=%d, date=%s, time=%s",
		bookingID, customerID, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
