package middlewares

import (
	"net/http"
	"time"
)

// RequestLogger writes a plain access log line per request, separate from
// the structured zap log.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.AccessLog.Printf("%s | %s %s => %d | %s", r.RemoteAddr, r.Method, r.RequestURI, rec.statusCode, time.Since(start))
	})
}
