package middleware

import (
	"voice-todo/pkg/log"
)

// Config carries the settings middlewares need.
type Config struct {
	// RequestsPerMin caps requests per client IP. Zero disables rate limiting.
	RequestsPerMin int
	// TelegramSecret must match X-Telegram-Bot-Api-Secret-Token when set.
	TelegramSecret string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	telegramSecret string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		telegramSecret: cfg.TelegramSecret,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
