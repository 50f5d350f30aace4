package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
)

// RateLimitByIP ограничивает число запросов с одного IP за окно window
// limit <= 0 отключает ограничение
func RateLimitByIP(limit int, window time.Duration) mux.MiddlewareFunc {
	if limit <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.LimitByIP(limit, window)
}
