package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/redis"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// RateLimit throttles writes per client IP using the shared redis
// counter. With no redis available the limiter lets everything through.
func RateLimit(rdb *redis.Client, logger *zap.Logger, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.Request.Method, c.ClientIP())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis being down should not take the API with it.
			logger.Warn("rate limit no disponible", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 42900, "demasiadas peticiones, intenta de nuevo en un momento")
			c.Abort()
			return
		}
		c.Next()
	}
}
