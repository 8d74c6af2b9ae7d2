package helper

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	FlashCookie     = "flash"
	flashContextKey = "flash"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// SetFlash stores a message for the next request.
func SetFlash(c *gin.Context, category, message string) {
	c.SetCookie(FlashCookie, category+"|"+message, 60, "/", "", false, true)
}

// GetFlash returns the message loaded by the Flash middleware, or nil.
func GetFlash(c *gin.Context) *Flash {
	v, ok := c.Get(flashContextKey)
	if !ok {
		return nil
	}
	flash, _ := v.(*Flash)
	return flash
}

// ConsumeFlash moves the flash cookie, if any, into the request context and
// expires it.
func ConsumeFlash(c *gin.Context) {
	raw, err := c.Cookie(FlashCookie)
	if err != nil || raw == "" {
		return
	}
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		category, message = "info", raw
	}
	c.Set(flashContextKey, &Flash{Category: category, Message: message})
}
