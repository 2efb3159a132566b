package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/princeprakhar/portfolio-backend/internal/config"
	"github.com/princeprakhar/portfolio-backend/pkg/logger"
)

// RateLimitMiddleware throttles the public surface per client IP and path.
// With REDIS_URL set the counters are shared across instances; otherwise an
// in-process store is used.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Second,
		Limit:  int64(cfg.RateLimitRPS),
	}

	store := newLimiterStore(cfg)
	instance := limiter.New(store, rate, limiter.WithTrustForwardHeader(true))

	return mgin.NewMiddleware(instance, mgin.WithKeyGetter(func(c *gin.Context) string {
		return fmt.Sprintf("%s:%s", c.ClientIP(), c.Request.URL.Path)
	}))
}

func newLimiterStore(cfg *config.Config) limiter.Store {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err == nil {
			client := redis.NewClient(opts)
			store, serr := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
				Prefix: "portfolio:ratelimit",
			})
			if serr == nil {
				return store
			}
			err = serr
		}
		logger.Warn("Redis rate limit store unavailable, falling back to memory: ", err)
	}
	return memory.NewStore()
}
