package middleware

import (
	"lumber-inventory/helper"

	"github.com/gin-gonic/gin"
)

// FlashMiddleware loads a pending flash message into the context for HTML
// pages. Redirects leave it in place for the page they lead to.
func FlashMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			helper.ConsumeFlash(c)
		}
		c.Next()
	}
}
