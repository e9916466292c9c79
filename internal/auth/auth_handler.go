package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
	"go-chms/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
		logger:  zap.L().Named("auth_handler"),
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, response.Success(token, nil))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, response.Success(token, nil))
}

func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	if err := h.service.RequestPasswordReset(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err, "password reset request failed")
		return
	}

	c.JSON(http.StatusOK, response.Success(MessageResponse{
		Message: "If an account exists for that email, a reset token has been issued",
	}, nil))
}

func (h *Handler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	if err := h.service.ConfirmPasswordReset(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err, "password reset failed")
		return
	}

	c.JSON(http.StatusOK, response.Success(MessageResponse{Message: "Password updated"}, nil))
}

// Me reflects the identity and role the middleware resolved for this request.
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, response.Success(MeResponse{
		Email: contextutil.GetUserEmail(ctx),
		Role:  contextutil.GetUserRole(ctx),
	}, nil))
}

// Logout exists for client symmetry. Tokens are stateless, so the server has
// nothing to revoke; clients drop the token.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(MessageResponse{Message: "Logged out"}, nil))
}

func (h *Handler) writeServiceError(c *gin.Context, err error, msg string) {
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)
	appErr := apperror.ToHTTP(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Warn(msg, zap.String("code", appErr.Code))
	}
	c.JSON(appErr.HTTPStatus, response.Error(appErr))
}
