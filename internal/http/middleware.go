package http

import (
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimit отвечает 429, когда лимитер не выдаёт токен. Повторов на стороне
// сервера нет: запрос просто отклоняется.
func (h *Handler) rateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				h.writeError(w, "rate_limit", errRateLimited())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
