package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-Key"

// RequestAPIKey returns the key a caller presented: the X-API-Key header,
// else the Authorization header with any "Bearer " prefix removed.
func RequestAPIKey(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key
	}
	return strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)
}

// APIKeyMiddleware gates programmatic callers. Requests without a key are
// browser calls and pass untouched; a presented key must equal secret.
func APIKeyMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := RequestAPIKey(c.Request)
		if key == "" {
			c.Next()
			return
		}

		if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			Logger(c).Warn("rejected api key", "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}

		c.Next()
	}
}
