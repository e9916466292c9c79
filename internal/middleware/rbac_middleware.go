package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-chms/internal/accesspolicy"
	"go-chms/internal/rbac"
	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
)

// Authorize returns a factory for per-route permission checks against the
// role the authentication middleware resolved.
func Authorize(roles *rbac.Service) func(resource, action string) gin.HandlerFunc {
	logger := zap.L().Named("rbac_middleware")

	return func(resource, action string) gin.HandlerFunc {
		return func(c *gin.Context) {
			role := accesspolicy.Role(contextutil.GetUserRole(c.Request.Context()))

			allowed, err := roles.Enforce(role, resource, action)
			if err != nil {
				logger.Error("enforce failed",
					zap.String("resource", resource),
					zap.String("action", action),
					zap.Error(err),
				)
				abortWith(c, apperror.ErrInternal)
				return
			}
			if !allowed {
				abortWith(c, apperror.ErrForbidden)
				return
			}

			c.Next()
		}
	}
}
