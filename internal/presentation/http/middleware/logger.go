package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key the request logger stores the id under.
const RequestIDKey = "request_id"

// LoggerMiddleware tags every request with an id and logs method, status,
// latency and client address once the handler chain finishes. Slow requests
// get an extra marker so they stand out when scanning logs.
func LoggerMiddleware() gin.HandlerFunc {
	const slowThreshold = 2 * time.Second

	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		marker := ""
		if latency > slowThreshold {
			marker = " SLOW"
		}

		log.Printf("[%s] %s %s | %d | %v | %s%s",
			requestID[:8],
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			marker,
		)

		for _, e := range c.Errors {
			log.Printf("[%s] error: %v", requestID[:8], e.Err)
		}
	}
}
