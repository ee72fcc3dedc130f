package http

import (
	"voice-todo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route answers with the unsupported message when speech input is unavailable.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.SpeechRequired(h.speech))

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.PATCH("/:id/done", h.ToggleDone)
		tasks.PATCH("/:id/pin", h.TogglePin)
		tasks.DELETE("/:id", h.Delete)
	}

	rg.GET("/stats", h.Stats)
	rg.GET("/categories", h.Categories)

	sp := rg.Group("/speech")
	{
		sp.GET("", h.SpeechState)
		sp.POST("/start", h.SpeechStart)
		sp.POST("/stop", h.SpeechStop)
		sp.POST("/reset", h.SpeechReset)
		sp.POST("/transcript", h.SpeechTranscript)
		sp.POST("/save", h.SpeechSave)
	}
}
