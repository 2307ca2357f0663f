package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/vfg2006/campaign-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

// RateLimit limita as requisições por IP. requests <= 0 desliga o limite.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			log.ForContext(r.Context()).WithField("remote_addr", r.RemoteAddr).Warn("Limite de requisições excedido")
			apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, http.StatusText(http.StatusTooManyRequests), nil)
		}),
	)
}
