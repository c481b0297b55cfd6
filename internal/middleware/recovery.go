package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns panics into 500 responses. Stack traces stay
// server-side; release mode never leaks them to the client.
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Time("timestamp", time.Now()),
					zap.ByteString("stack", debug.Stack()),
				)

				response := gin.H{
					"success": false,
					"message": "Internal Server Error",
				}
				if gin.Mode() != gin.ReleaseMode {
					response["stack"] = string(debug.Stack())
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, response)
			}
		}()

		c.Next()
	}
}
