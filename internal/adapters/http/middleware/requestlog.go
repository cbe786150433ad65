package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// slowRequestThreshold marks requests worth a WARN instead of DEBUG.
const slowRequestThreshold = 200 * time.Millisecond

// requestIDCounter is an atomic counter for request IDs.
var requestIDCounter uint64

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

// WriteHeader captures the status code and delegates to the underlying ResponseWriter.
// PRE: code is a valid HTTP status code
// POST: status stored, header written to underlying ResponseWriter
func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// RequestLog returns middleware that logs request method, path, status, and
// duration. Requests to /static/ are excluded. Normal requests log at DEBUG;
// slow requests log at WARN.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if strings.HasPrefix(path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		reqID := atomic.AddUint64(&requestIDCounter, 1)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		if duration >= slowRequestThreshold {
			slog.Warn("slow_request",
				"request_id", reqID,
				"method", r.Method,
				"path", path,
				"status", sw.status,
				"duration_ms", float64(duration.Microseconds())/1000.0,
			)
			return
		}
		slog.Debug("request",
			"request_id", reqID,
			"method", r.Method,
			"path", path,
			"status", sw.status,
			"duration_ms", float64(duration.Microseconds())/1000.0,
		)
	})
}
