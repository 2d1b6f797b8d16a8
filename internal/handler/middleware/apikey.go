package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the merchant's opaque credential. The key is not
// verified here; usecases resolve it against the merchant catalog.
const APIKeyHeader = "X-API-Key"

const ctxAPIKeyKey = "api_key"

// RequireAPIKey rejects requests that present no merchant key at all.
func RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "API key required"},
			})
			c.Abort()
			return
		}

		c.Set(ctxAPIKeyKey, key)
		c.Next()
	}
}

func GetAPIKey(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAPIKeyKey)
	if !exists {
		return "", false
	}
	key, ok := v.(string)
	return key, ok && key != ""
}
