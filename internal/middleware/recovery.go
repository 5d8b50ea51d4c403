package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns handler panics into 500 responses.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[Recovery] Panic recovered: %v\n", err)
				log.Printf("[Recovery] Stack trace: %s\n", debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message":    "Server error",
					"error_kind": "internal",
				})
			}
		}()

		c.Next()
	}
}
