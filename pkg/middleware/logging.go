package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs one INFO line per request. Pass nil logger to
// disable logging.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if logger == nil {
			return next
		}
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo render the error so the status below is final
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			fields := []zap.Field{
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("route", c.Path()),
				zap.Int("status", res.Status),
				zap.Int64("bytes", res.Size),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			logger.Info("HTTP request", fields...)
			return nil
		}
	}
}
