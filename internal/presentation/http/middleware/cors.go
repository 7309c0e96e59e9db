package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kiranps/tradebooks-api/internal/config"
)

// CORSMiddleware builds the CORS policy from configuration, falling back to
// local development origins when none are set. Idempotency-Key stays in the
// allow-list regardless of configuration because document and payment POSTs
// require it.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(policy.AllowOrigins) == 0 {
		policy.AllowOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
	}
	if len(policy.AllowMethods) == 0 {
		policy.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(policy.AllowHeaders) == 0 {
		policy.AllowHeaders = []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
			"Origin",
		}
	}
	if !containsHeader(policy.AllowHeaders, "Idempotency-Key") {
		policy.AllowHeaders = append(policy.AllowHeaders, "Idempotency-Key")
	}

	return cors.New(policy)
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
