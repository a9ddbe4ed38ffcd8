package utils

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// SetFlash stores a one-shot message for the next rendered page.
func SetFlash(c *gin.Context, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(message))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// PopFlash returns the pending message, if any, and clears it.
func PopFlash(c *gin.Context) string {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return ""
	}
	return string(raw)
}

// RedirectWithFlash is the standard answer to a rejected form submit.
func RedirectWithFlash(c *gin.Context, location, message string) {
	if message != "" {
		SetFlash(c, message)
	}
	c.Redirect(http.StatusFound, location)
}
