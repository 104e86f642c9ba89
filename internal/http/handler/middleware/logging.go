package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

// Logging writes one access log line per request once the handler returns.
func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		m.logs.Infow("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", lrw.statusCode,
			"status_class", statusClass(lrw.statusCode),
			"req_body_len", r.ContentLength,
			"rsp_body_len", lrw.responseLength,
			"duration", time.Since(start),
			"request_id", RequestIDFromContext(r.Context()))
	})
}

// loggedResponseWriter records the status code and body size written through it.
type loggedResponseWriter struct {
	http.ResponseWriter
	statusCode     int
	responseLength int64
	wroteHeader    bool
}

func (lrw *loggedResponseWriter) WriteHeader(statusCode int) {
	if !lrw.wroteHeader {
		lrw.statusCode = statusCode
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(statusCode)
}

func (lrw *loggedResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	size, err := lrw.ResponseWriter.Write(b)
	lrw.responseLength += int64(size)
	return size, err
}

func statusClass(statusCode int) string {
	return fmt.Sprintf("%dxx", statusCode/100)
}
