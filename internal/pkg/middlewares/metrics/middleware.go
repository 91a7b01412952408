package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"orderbot/pkg/logger"
)

const unmatchedRoute = "unmatched"

// служебные маршруты, которые дергаются каждые несколько секунд
var quietRoutes = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
}

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			route := RouteTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, statusCode).Inc()

			// путь вебхука содержит секрет, поэтому в лог идет только шаблон маршрута
			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			)
			if _, quiet := quietRoutes[route]; quiet {
				reqLog.Debug("HTTP request")
				return
			}
			reqLog.Info("HTTP request")
		})
	}
}

// RouteTemplate шаблон mux-маршрута запроса, например /telegram/{secret}.
// Для запросов мимо роутера возвращает "unmatched", чтобы не раздувать метки.
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return template
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
