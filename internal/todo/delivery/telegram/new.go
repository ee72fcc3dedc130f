package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"voice-todo/internal/todo"
	"voice-todo/pkg/datemath"
	pkgLog "voice-todo/pkg/log"
	pkgTelegram "voice-todo/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     todo.UseCase
	bot    *pkgTelegram.Bot
	dates  *datemath.Parser
	chatID int64
	now    func() time.Time
}

// New creates a new Telegram delivery handler. When chatID is non-zero only
// that chat may read or change the list.
func New(l pkgLog.Logger, uc todo.UseCase, bot *pkgTelegram.Bot, dates *datemath.Parser, chatID int64) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		dates:  dates,
		chatID: chatID,
		now:    time.Now,
	}
}
