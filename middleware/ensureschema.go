package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// SchemaEnsurer is satisfied by *store.Initializer.
type SchemaEnsurer interface {
	EnsureOnce(ctx context.Context) error
}

// EnsureSchema runs the initializer before the request is handled, for
// environments where the database can be gone at cold start. Failures are
// logged and the request continues.
func EnsureSchema(init SchemaEnsurer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := init.EnsureOnce(c.Request.Context()); err != nil {
			Logger(c).Error("database init failed", "error", err)
		}
		c.Next()
	}
}
