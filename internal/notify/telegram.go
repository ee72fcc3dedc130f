package notify

import (
	"context"
	"fmt"
	"sync"

	pkgLog "voice-todo/pkg/log"
	pkgTelegram "voice-todo/pkg/telegram"
)

// Telegram sends reminders to one chat.
type Telegram struct {
	l      pkgLog.Logger
	bot    *pkgTelegram.Bot
	chatID int64

	once    sync.Once
	permErr error
}

func NewTelegram(l pkgLog.Logger, bot *pkgTelegram.Bot, chatID int64) *Telegram {
	return &Telegram{l: l, bot: bot, chatID: chatID}
}

// RequestPermission validates the bot token once and caches the outcome.
func (n *Telegram) RequestPermission(ctx context.Context) error {
	n.once.Do(func() {
		if n.chatID == 0 {
			n.permErr = fmt.Errorf("telegram notifier: chat id is not configured")
			return
		}
		me, err := n.bot.GetMe(ctx)
		if err != nil {
			n.permErr = fmt.Errorf("telegram notifier: %w", err)
			return
		}
		n.l.Infof(ctx, "notify.Telegram: delivering reminders as @%s to chat %d", me.Username, n.chatID)
	})
	return n.permErr
}

func (n *Telegram) Notify(ctx context.Context, title, body string) {
	text := fmt.Sprintf("%s\n%s", title, body)
	if err := n.bot.SendMessage(ctx, n.chatID, text); err != nil {
		n.l.Warnf(ctx, "notify.Telegram: send failed: %v", err)
	}
}
