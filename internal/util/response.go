package util

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Error writes the shared error envelope. details is optional extra context
// that is safe to show to clients; internal failure detail stays in the
// server log, never here.
func Error(c *gin.Context, status int, message, details string) {
	c.JSON(status, gin.H{
		"statusCode": status,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"path":       c.Request.URL.Path,
		"message":    message,
		"details":    details,
	})
}
