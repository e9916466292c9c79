package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
)

const inFlightTTL = 10 * time.Second

var errRequestInFlight = apperror.New(
	"PROCESSING",
	"An identical request is still being processed",
	http.StatusConflict,
)

// InFlightLock allows at most one concurrent request per user and route.
// Double-taps on a submit button land here instead of racing the duplicate
// check. Fails open when redis is unavailable; the lock narrows a window, it
// is not a correctness guarantee.
func InFlightLock(client *redis.Client) gin.HandlerFunc {
	logger := zap.L().Named("idempotency_middleware")

	return func(c *gin.Context) {
		email := contextutil.GetUserEmail(c.Request.Context())
		if email == "" {
			c.Next()
			return
		}

		key := "inflight:" + email + ":" + c.Request.Method + ":" + c.FullPath()

		acquired, err := client.SetNX(c.Request.Context(), key, "1", inFlightTTL).Result()
		if err != nil {
			logger.Warn("in-flight lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			abortWith(c, errRequestInFlight)
			return
		}
		defer func() {
			if err := client.Del(context.Background(), key).Err(); err != nil {
				logger.Warn("in-flight lock release failed", zap.Error(err))
			}
		}()

		c.Next()
	}
}
