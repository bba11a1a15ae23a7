package api

import (
	"net/http"
	"time"

	"cogni-recommender/internal/common/logger"
	"cogni-recommender/internal/common/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// RequestID tags every request with an id, reusing the caller's if present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request and records the request meters.
func RequestLogger(log logger.Logger, obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		fields := map[string]interface{}{
			"requestId": c.GetString(requestIDKey),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latencyMs": latency.Milliseconds(),
			"clientIp":  c.ClientIP(),
		}
		if status >= 500 {
			log.Error("http request", fields)
		} else {
			log.Info("http request", fields)
		}

		obs.RecordRequest(c.Request.Context(), c.Request.Method, route, status, latency)
	}
}

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered", map[string]interface{}{
			"requestId": c.GetString(requestIDKey),
			"path":      c.Request.URL.Path,
			"panic":     recovered,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	})
}
