package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-todo/pkg/log"
)

// HeaderRequestID carries the trace id in and out.
const HeaderRequestID = "X-Request-ID"

// TraceID attaches a trace id to the request context so every log line of
// the request carries it. An incoming X-Request-ID is reused.
func (mw Middleware) TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}
