package middleware

import (
	"log"
	"runtime/debug"

	"tonotes/metrics"
	"tonotes/utils"

	"github.com/gin-gonic/gin"
)

// EnhancedRecoveryMiddleware turns a panic into an INTERNAL_ERROR envelope.
func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic serving %s %s (request %s): %v\n%s",
					c.Request.Method, c.Request.URL.Path, c.GetString(ContextRequestID), err, debug.Stack())
				metrics.TrackError(utils.CodeInternal)
				utils.InternalError(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
