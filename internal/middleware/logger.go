package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorLogger writes the errors handlers attached with c.Error.
func ErrorLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			log.Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"error", err.Err,
			)
		}
	}
}
