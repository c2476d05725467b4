package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog records method, path, status, latency and the authenticated
// user (when present) for every request.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		userID := "-"
		if id, ok := CurrentIdentity(c); ok {
			userID = id.UserID
		}

		log.Printf("%s %s status=%d user=%s took=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			userID,
			time.Since(start).Round(time.Microsecond),
		)
	}
}
