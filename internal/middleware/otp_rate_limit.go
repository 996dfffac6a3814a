package middleware

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OTPRateLimit adalah fixed window per IP + path yang disimpan di Redis.
// Redis yang gagal tidak memblokir request (fail open, dicatat di log).
func OTPRateLimit(rdb redis.Cmdable, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("middleware.otp_rate_limit")

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:otp:%s:%s", c.ClientIP(), c.FullPath())

		// INCR dan EXPIRE NX dalam satu MULTI: key tidak pernah tertinggal tanpa TTL.
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.Warn("otp limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		count := incr.Val()

		if count > int64(limit) {
			ttl, err := rdb.TTL(ctx, key).Result()
			if err != nil || ttl <= 0 {
				ttl = window
			}
			retryAfter := int(math.Ceil(ttl.Seconds()))

			c.Header("Retry-After", fmt.Sprint(retryAfter))
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED",
				"Too many OTP requests, please try again later",
				gin.H{"retryAfterSeconds": retryAfter},
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
