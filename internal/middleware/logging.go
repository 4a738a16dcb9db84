// Package middleware provides HTTP middleware for request logging and metrics.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger returns a gin middleware that logs every request with its
// method, path, status, and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Milliseconds()
		status := c.Writer.Status()
		if status >= 500 {
			slog.Error("Request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"duration_ms", duration,
			)
		} else if status >= 400 {
			slog.Warn("Request rejected",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"duration_ms", duration,
			)
		} else {
			slog.Info("Request completed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"duration_ms", duration,
			)
		}
	}
}
