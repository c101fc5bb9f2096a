package middleware

import (
	"github.com/gin-gonic/gin"
)

const ContextClientIP = "client_ip"

// ClientIPMiddleware stores the client address once per request.
// Forwarding headers count only when the engine trusts the immediate peer (SetTrustedProxies).
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextClientIP, c.ClientIP())
		c.Next()
	}
}
