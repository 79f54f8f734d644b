package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"service-desk-bot/pkg/log"
)

// RequestIDHeader is read from and echoed back on every response.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID attaches a request id to the request context and logs the completed request.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		// Route pattern, not the raw path: the webhook path carries the bot token.
		m.l.Debugf(ctx, "%s %s -> %d in %s", c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
