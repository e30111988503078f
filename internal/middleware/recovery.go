package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery answers a panicking handler with a 500 and logs the stack at
// error level, which the sentry hook picks up. http.ErrAbortHandler is raised
// again so net/http can abort the response.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Errorf("recovered handler panic: %v\n%s", rec, debug.Stack())
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
