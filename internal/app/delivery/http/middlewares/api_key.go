package middlewares

import (
	"context"
	"net/http"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// APIKeyAuth guards the admin surface. Every request must carry the
// configured key in the X-Api-Key header.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" || apiKey != m.InternalConfig.App.AdminAPIKey {
			m.Log.Warn("API key authentication failed",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
