package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery middleware catches panics, logs them with stack traces, and
// returns a generic 500 error body that never leaks internal detail
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())

				logger.Error("Panic recovered",
					"error", r,
					"stack", stack,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"c_request_id", GetRequestID(c),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"errorCode":        http.StatusInternalServerError,
					"errorDescription": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
