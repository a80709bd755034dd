package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogsmith/internal/logger"
	"blogsmith/internal/trace"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace guarantees a request ID and span sequence for every inbound
// request and logs the completed request with structured fields. Outbound
// calls made while serving the request pick up the next span IDs through the
// shared http client.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// inbound logs carry span_id=0; outbound calls increment from there
		ctxWithTrace := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctxWithTrace)
		req = c.Request

		currentSpan := trace.CurrentSpanID(ctxWithTrace)
		c.Request.Header.Set(headerRequestID, requestID)
		c.Request.Header.Set(headerSpanID, currentSpan)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, currentSpan)

		c.Next()

		status := c.Writer.Status()
		finalSpan := trace.CurrentSpanID(c.Request.Context())
		logger.InfoWithFields("completed request", logger.Fields{
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     status,
			"duration":   time.Since(start).String(),
			"request_id": requestID,
			"span_id":    finalSpan,
		})
	}
}
