package get_customer_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/acolella/BarberShop-BookingService/internal/api/handlers"
	"github.com/acolella/BarberShop-BookingService/internal/api/middleware"
	"github.com/acolella/BarberShop-BookingService/internal/service/bookings"
	"github.com/acolella/BarberShop-BookingService/internal/service/bookings/models"
)

const (
	msgUnauthorized      = "требуется аутентификация"
	msgInvalidCustomerID = "некорректный идентификатор клиента"
	msgForeignCustomer   = "доступ к чужим бронированиям запрещён"
	msgInvalidFilter     = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/bookings?date=&barberId=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authCustomerID, ok := middleware.CustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil || customerID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Клиент видит только собственную историю
	if customerID != authCustomerID {
		h.logger.Warn("GET /customers/%d/bookings - Forbidden for customer %d", customerID, authCustomerID)
		handlers.RespondForbidden(w, msgForeignCustomer)
		return
	}

	req := &models.GetCustomerBookingsRequest{
		CustomerID: customerID,
	}

	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		req.Date = &dateStr
	}

	if barberStr := query.Get("barberId"); barberStr != "" {
		barberID, err := strconv.ParseInt(barberStr, 10, 64)
		if err != nil || barberID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.BarberID = &barberID
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/%d/bookings - Invalid filter: %v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /customers/%d/bookings - Failed to list bookings: %v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/%d/bookings - Returned %d bookings", customerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
