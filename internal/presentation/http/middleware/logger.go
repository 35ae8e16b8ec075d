package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware creates a structured logging middleware
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate request ID if not present
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		status := c.Writer.Status()
		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.String("path", path),
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			slog.Default().ErrorContext(ctx, "request", attrs...)
		case status >= 400:
			slog.Default().WarnContext(ctx, "request", attrs...)
		default:
			slog.Default().InfoContext(ctx, "request", attrs...)
		}

		for _, e := range c.Errors {
			slog.Default().ErrorContext(ctx, "request error",
				slog.String("request_id", requestID),
				slog.String("err", e.Err.Error()),
			)
		}
	}
}
