package middleware

import (
	"context"
	"net/http"
	"time"

	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter decides whether another request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Fixed window counter: the first hit in a window sets the expiry.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter is a fixed-window Limiter shared by every API instance.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{"ratelimit:" + key}, ttl, limit).Int64()
	if err != nil {
		return false, err
	}
	return allowed == 1, nil
}

// RateLimit limits requests per client IP. Limiter failures let the request through.
func RateLimit(limiter Limiter, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("ratelimit")
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 || window <= 0 {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), limit, window)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.String("client_ip", c.ClientIP()), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "Too many requests"})
			return
		}
		c.Next()
	}
}
