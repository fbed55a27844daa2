package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	applogger "MeanRev/pkg/logger"
)

const HeaderRequestID = "X-Request-Id"

// RequestLogging assigns each request an ID (honoring one supplied by the
// caller) and logs method, path, status and latency on completion.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, id)

			start := time.Now()
			err := next(c)

			if l != nil {
				l.Info("http request",
					applogger.String("request_id", id),
					applogger.String("method", req.Method),
					applogger.String("path", req.URL.Path),
					applogger.Int("status", c.Response().Status),
					applogger.Duration("duration_ms", time.Since(start)),
				)
			}
			return err
		}
	}
}
