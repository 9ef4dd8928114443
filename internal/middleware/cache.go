package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses as uncacheable. View payloads reflect the
// catalog at request time and must never be served stale.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
