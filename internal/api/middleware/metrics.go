package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/pkg/metrics"
)

// statusRecorder перехватывает статус-код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов (количество, длительность)
// В качестве path используется шаблон маршрута, чтобы не плодить метки
func MetricsMiddleware(m *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			duration := time.Since(start).Seconds()
			m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
		})
	}
}
