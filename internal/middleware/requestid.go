package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Stuti0916/SymMuse/internal/logger"
)

// RequestIDHeader carries the correlation ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request a correlation ID and stores it, along with
// the base logger, in the request context. An incoming X-Request-ID is kept.
func RequestID(base logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader(RequestIDHeader))
		ctx = logger.WithLogger(ctx, base)
		requestID := logger.RequestIDFromContext(ctx)

		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
