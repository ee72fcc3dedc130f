package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	pkgResponse "voice-todo/pkg/response"
	pkgTelegram "voice-todo/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 at once and processes the message in the background so a
// slow Bot API reply never trips the webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if h.chatID != 0 && update.Message.Chat.ID != h.chatID {
		h.l.Warnf(ctx, "telegram handler: ignoring chat %d", update.Message.Chat.ID)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		// Detach from the request context, which ends with the response.
		bgCtx := context.WithoutCancel(ctx)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}
