package dbmetrics

import (
	"database/sql"
	"time"

	"github.com/acolella/BarberShop-BookingService/pkg/metrics"
)

// defaultPoolStatsInterval период опроса статистики пула соединений
const defaultPoolStatsInterval = 15 * time.Second

// WrapWithDefault оборачивает db сбором метрик и запускает фоновый опрос
// статистики пула соединений. Опрос останавливается закрытием stopCh.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, serviceName)

	go func() {
		ticker := time.NewTicker(defaultPoolStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBConnections("open", float64(stats.OpenConnections))
				m.SetDBConnections("in_use", float64(stats.InUse))
				m.SetDBConnections("idle", float64(stats.Idle))
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}
