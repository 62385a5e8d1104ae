package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the HTTP header checked against the allow-list
const APIKeyHeader = "x-api-key"

// APIKey middleware rejects any request whose x-api-key header is missing or
// not on the allow-list. The health endpoint is registered outside the
// protected group, everything else goes through here.
func APIKey(logger *slog.Logger, allowedKeys []string) gin.HandlerFunc {
	keys := make(map[string]struct{}, len(allowedKeys))
	for _, k := range allowedKeys {
		keys[k] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := keys[c.GetHeader(APIKeyHeader)]; !ok {
			logger.Warn("Request rejected: invalid API key",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errorCode":        http.StatusUnauthorized,
				"errorDescription": "Invalid or missing API key",
			})
			return
		}

		c.Next()
	}
}
