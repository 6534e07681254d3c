package main

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// statusRecorder - yanıt kodunu yakalamak için ResponseWriter sarmalayıcı
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware - her HTTP isteğini süresiyle birlikte logla.
// WebSocket yükseltmeleri sarmalanmaz; hijack desteği bozulmasın.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/chat/ws" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("📥 Request handled")
	})
}
