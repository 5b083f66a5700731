package cmd

import (
	"log/slog"

	httpin "tubertreats/internal/adapters/in/http"
	"tubertreats/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewWebServer builds the echo instance serving the API. The Swagger UI is
// mounted under /swagger/ in development only.
func NewWebServer(root CompositionRoot, config Config) (*echo.Echo, error) {
	logger := root.logger.With("component", "web")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = httpin.JSONSerializer{}
	e.HTTPErrorHandler = httpin.ErrorHandler(root.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	server := root.CreateServer()
	servers.RegisterHandlers(e, server)

	if config.IsDevelopment() {
		if err := servers.RegisterSwaggerDoc(); err != nil {
			return nil, err
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e, nil
}
