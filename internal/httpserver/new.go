package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-todo/internal/middleware"
	"voice-todo/internal/speech"
	"voice-todo/internal/todo"
	tgDelivery "voice-todo/internal/todo/delivery/telegram"
	"voice-todo/pkg/datemath"
	"voice-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Todo domain
	todoUC todo.UseCase
	speech speech.Input
	dates  *datemath.Parser

	// Telegram front end (optional)
	telegramHandler tgDelivery.Handler

	// readiness probes, e.g. storage reachability
	readyChecks []ReadyCheck
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	// Todo domain
	TodoUseCase todo.UseCase
	Speech      speech.Input
	Dates       *datemath.Parser

	// Telegram front end (optional)
	TelegramHandler tgDelivery.Handler

	ReadyChecks []ReadyCheck
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.Middleware),
		todoUC:          cfg.TodoUseCase,
		speech:          cfg.Speech,
		dates:           cfg.Dates,
		telegramHandler: cfg.TelegramHandler,
		readyChecks:     cfg.ReadyChecks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoUC == nil {
		return errors.New("todo use case is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
