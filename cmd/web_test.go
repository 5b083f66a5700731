package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tubertreats/cmd"
	"tubertreats/internal/adapters/out/memory"
	"tubertreats/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebServer(t *testing.T, appEnv string) *echo.Echo {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background(), time.Now()))

	config := cmd.Config{AppEnv: appEnv}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := cmd.NewWebServer(cmd.NewCompositionRoot(config, store, kernel.SystemClock(), logger), config)
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNewWebServer(t *testing.T) {
	t.Run("should serve the swagger document in development", func(t *testing.T) {
		e := newWebServer(t, cmd.EnvDevelopment)

		rec := serve(e, "/swagger/doc.json")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/tuberorders/{id}/complete")
	})

	t.Run("should not mount the swagger ui in production", func(t *testing.T) {
		e := newWebServer(t, cmd.EnvProduction)

		rec := serve(e, "/swagger/doc.json")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should tag every response with a request id", func(t *testing.T) {
		e := newWebServer(t, cmd.EnvProduction)

		first := serve(e, "/health")
		second := serve(e, "/health")

		require.Equal(t, http.StatusOK, first.Code)
		assert.NotEmpty(t, first.Header().Get(echo.HeaderXRequestID))
		assert.NotEqual(t, first.Header().Get(echo.HeaderXRequestID), second.Header().Get(echo.HeaderXRequestID))
	})
}
