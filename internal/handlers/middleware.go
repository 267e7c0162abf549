package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the caller, and emits a debug access line once
// the handler finishes.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("requestID", id)
	c.Writer.Header().Set(requestIDHeader, id)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Debugw("http_request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
