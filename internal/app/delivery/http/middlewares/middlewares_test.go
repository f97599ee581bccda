package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"smileworks-service/internal/app/config"
	"smileworks-service/internal/pkg/constvars"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(adminKey string) *Middlewares {
	accessLog := logrus.New()
	accessLog.SetOutput(io.Discard)
	return NewMiddlewares(zap.NewNop(), accessLog, &config.InternalConfig{
		App: config.App{AdminAPIKey: adminKey},
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	m := newTestMiddlewares("secret-key")
	handler := m.APIKeyAuth(okHandler())

	t.Run("valid key passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/locations", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "secret-key")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/locations", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "wrong")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/locations", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	m := newTestMiddlewares("")

	t.Run("generates an id when header absent", func(t *testing.T) {
		var seen string
		handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
		assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
	})

	t.Run("keeps the client id when present", func(t *testing.T) {
		var seen string
		handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, "client-id-123", seen)
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := newTestMiddlewares("")
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
