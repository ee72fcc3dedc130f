package middleware

import (
	"github.com/gin-gonic/gin"

	"voice-todo/internal/speech"
	"voice-todo/internal/todo"
	"voice-todo/pkg/response"
)

// SpeechRequired answers every request with the unsupported message when in
// cannot recognise speech.
func (mw Middleware) SpeechRequired(in speech.Input) gin.HandlerFunc {
	return func(c *gin.Context) {
		if in == nil || !in.Supported() {
			response.NotImplemented(c, todo.UnsupportedMessage)
			return
		}
		c.Next()
	}
}
