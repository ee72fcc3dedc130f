package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderTelegramSecret is set by Telegram on webhook calls when a secret was registered.
const HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls that do not carry the configured secret.
func (mw Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.telegramSecret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(HeaderTelegramSecret)
		if subtle.ConstantTimeCompare([]byte(got), []byte(mw.telegramSecret)) != 1 {
			mw.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: rejected webhook from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
			return
		}
		c.Next()
	}
}
