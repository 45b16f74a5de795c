package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"climate-api/pkg/log"
	"climate-api/pkg/msg"
)

// dateParams are the path params of the temperature routes
var dateParams = []string{"start", "end"}

// SetupRequestLogger logs one entry per request with the matched route and, for
// temperature queries, the requested dates. Health probes and swagger assets are skipped.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasSuffix(path, "/health") || strings.Contains(path, "/swagger/")
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := requestFields(c, v)
			if v.Error != nil {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error.Error()),
					append(fields, zap.Error(v.Error))...)
				return nil
			}

			log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			return nil
		},
	}))
}

func requestFields(c echo.Context, v echomw.RequestLoggerValues) []zap.Field {
	fields := []zap.Field{
		zap.String("method", v.Method),
		zap.String("uri", v.URI),
		zap.String("route", v.RoutePath),
		zap.Int("status", v.Status),
		zap.Duration("latency", v.Latency),
		zap.String("request_id", v.RequestID),
	}

	for _, name := range dateParams {
		if value := c.Param(name); value != "" {
			fields = append(fields, zap.String(name, value))
		}
	}
	return fields
}
