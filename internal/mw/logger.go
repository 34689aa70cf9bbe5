package mw

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", GetRequestID(c),
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Errorw("request failed", fields...)
		case len(c.Errors) > 0:
			logger.Warnw("request completed with errors", append(fields, "errors", c.Errors.String())...)
		default:
			logger.Infow("request", fields...)
		}
	}
}
