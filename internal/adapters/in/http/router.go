package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	// AllowedOrigin is the single front-end origin allowed by CORS. Empty allows any.
	AllowedOrigin string
}

// NewRouter builds the echo instance with middleware, error handling, the OpenAPI
// document and every route of ServerInterface.
func NewRouter(cfg RouterConfig, si ServerInterface, verifier TokenVerifier, logger *slog.Logger) (*echo.Echo, error) {
	if _, err := GetSwagger(); err != nil {
		return nil, err
	}
	registerSwaggerDoc()

	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(requestLogger(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.ErrorContext(c.Request().Context(), "panic recovered",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err,
				"stack", string(stack),
			)
			return errRecoveredPanic
		},
	}))
	e.Use(middleware.CORSWithConfig(corsConfig(cfg.AllowedOrigin)))

	RegisterHandlers(e, si, BearerAuth(verifier), HubAuth(verifier))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func corsConfig(origin string) middleware.CORSConfig {
	cfg := middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept},
	}
	if origin != "" && origin != "*" {
		cfg.AllowOrigins = []string{origin}
		cfg.AllowCredentials = true
	}
	return cfg
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(requestContext(c), level, "request", attrs...)
			return nil
		},
	})
}

func requestContext(c echo.Context) context.Context {
	if r := c.Request(); r != nil {
		return r.Context()
	}
	return context.Background()
}
