package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-todo/config"
	_ "voice-todo/docs" // Swagger docs
	"voice-todo/internal/httpserver"
	"voice-todo/internal/middleware"
	"voice-todo/internal/notify"
	"voice-todo/internal/reminder"
	"voice-todo/internal/speech"
	tgDelivery "voice-todo/internal/todo/delivery/telegram"
	"voice-todo/internal/todo/repository"
	"voice-todo/internal/todo/usecase"
	"voice-todo/pkg/datemath"
	"voice-todo/pkg/gcalendar"
	"voice-todo/pkg/log"
	"voice-todo/pkg/telegram"
)

// @title       Voice To-Do API
// @description Voice-driven to-do list with categories, due-date reminders and a Telegram front end.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice To-Do...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dates
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	kv, err := openStore(cfg.Storage)
	if err != nil {
		logger.Errorf(ctx, "Failed to open %s storage: %v", cfg.Storage.Driver, err)
		return
	}
	defer kv.Close()
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)
	taskRepo := repository.New(kv, dates.Location(), logger)

	// 5. Speech
	var in speech.Input = speech.Unsupported{}
	if cfg.Speech.Enabled {
		in = speech.NewSession()
	}

	// 6. Notifiers
	notifiers := notify.Multi{notify.NewLog(logger)}

	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.ChatID != 0 {
			notifiers = append(notifiers, notify.NewTelegram(logger, bot, cfg.Telegram.ChatID))
		} else {
			logger.Warn(ctx, "telegram.chat_id is empty, reminders will not be sent to Telegram")
		}
	}

	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx,
			cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath, cfg.GoogleCalendar.CalendarID)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			tz := dates.Location().String()
			if tz == "Local" {
				tz = "" // RFC3339 offsets carry the zone
			}
			notifiers = append(notifiers, notify.NewCalendar(logger, calendarClient, tz))
			logger.Infof(ctx, "✅ Google Calendar reminders on %s", calendarClient.CalendarID())
		}
	}

	if err := notifiers.RequestPermission(ctx); err != nil {
		logger.Warnf(ctx, "Some reminder channels are unavailable: %v", err)
	}

	// 7. Todo use case
	todoUC, err := usecase.New(ctx, logger, taskRepo, notifiers, in)
	if err != nil {
		logger.Errorf(ctx, "Failed to load tasks: %v", err)
		return
	}

	// 8. Reminder scheduler
	go reminder.New(logger, todoUC, cfg.Reminder.Interval).Run(ctx)

	// 9. Telegram front end (optional)
	var telegramHandler tgDelivery.Handler
	if bot != nil {
		telegramHandler = tgDelivery.New(logger, todoUC, bot, dates, cfg.Telegram.ChatID)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" && cfg.Telegram.NgrokAPI != "" {
			ngrokURL, ngrokErr := newTunnelFinder(cfg.Telegram.NgrokAPI).webhookURL(ctx)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			TelegramSecret: cfg.Telegram.WebhookSecret,
		},
		TodoUseCase:     todoUC,
		Speech:          in,
		Dates:           dates,
		TelegramHandler: telegramHandler,
		ReadyChecks:     []httpserver.ReadyCheck{storageReadyCheck(cfg.Storage.Driver, kv)},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
