package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/acolella/BarberShop-BookingService/internal/api/handlers"
)

// HeaderCustomerID заголовок с идентификатором клиента
const HeaderCustomerID = "X-Customer-ID"

const msgUnauthorized = "требуется заголовок X-Customer-ID"

type contextKey string

const customerIDKey contextKey = "customerID"

// Auth проверяет наличие валидного X-Customer-ID и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderCustomerID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CustomerID возвращает идентификатор клиента из контекста
func CustomerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(customerIDKey).(int64)
	return id, ok
}
