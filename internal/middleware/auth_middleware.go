package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-chms/internal/accesspolicy"
	"go-chms/internal/auth"
	autherrors "go-chms/internal/auth/errors"
	"go-chms/internal/rbac"
	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
	"go-chms/internal/shared/response"
)

// roleLookupTimeout bounds the per-request access-list query. On timeout the
// request is treated as unauthenticated rather than waiting out the caller.
const roleLookupTimeout = 5 * time.Second

var errAccessPending = apperror.New(
	"ACCESS_PENDING",
	"Your email is not on the access list yet; contact an administrator",
	http.StatusForbidden,
)

// Authenticate validates the bearer token and resolves the caller's role
// from the access list. The role rides the request context; it is never read
// from the token itself.
func Authenticate(tokens *auth.TokenManager, roles *rbac.Service) gin.HandlerFunc {
	logger := zap.L().Named("auth_middleware")

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		lookupCtx, cancel := context.WithTimeout(c.Request.Context(), roleLookupTimeout)
		defer cancel()

		role, err := roles.ResolveRole(lookupCtx, claims.Email)
		if err != nil {
			logger.Warn("role lookup failed", zap.String("email", claims.Email), zap.Error(err))
			abortWith(c, apperror.ErrUnauthorized)
			return
		}
		if role == accesspolicy.RoleNone {
			abortWith(c, errAccessPending)
			return
		}

		ctx := contextutil.WithUserEmail(c.Request.Context(), claims.Email)
		ctx = contextutil.WithUserRole(ctx, string(role))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, appErr *apperror.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, response.Error(appErr))
}
