package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"voice-todo/internal/speech"
	"voice-todo/internal/todo"
	"voice-todo/pkg/datemath"
	"voice-todo/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	ToggleDone(c *gin.Context)
	TogglePin(c *gin.Context)
	Delete(c *gin.Context)
	Stats(c *gin.Context)
	Categories(c *gin.Context)

	SpeechState(c *gin.Context)
	SpeechStart(c *gin.Context)
	SpeechStop(c *gin.Context)
	SpeechReset(c *gin.Context)
	SpeechTranscript(c *gin.Context)
	SpeechSave(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     todo.UseCase
	speech speech.Input
	dates  *datemath.Parser
	now    func() time.Time
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase, in speech.Input, dates *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		speech: in,
		dates:  dates,
		now:    time.Now,
	}
}

var _ Handler = (*handler)(nil)
