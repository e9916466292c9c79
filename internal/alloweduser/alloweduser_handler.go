package alloweduser

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
		logger:  zap.L().Named("alloweduser_handler"),
	}
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to list users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(&u))
	}

	c.JSON(http.StatusOK, response.Success(out, nil))
}

func (h *Handler) Add(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	user, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to add user")
		return
	}

	c.JSON(http.StatusCreated, response.Success(toUserResponse(user), nil))
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	user, err := h.service.UpdateRole(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to update role")
		return
	}

	c.JSON(http.StatusOK, response.Success(toUserResponse(user), nil))
}

func (h *Handler) Remove(c *gin.Context) {
	email := c.Param("email")

	if err := h.service.Remove(c.Request.Context(), email); err != nil {
		h.writeServiceError(c, err, "failed to remove user")
		return
	}

	c.JSON(http.StatusOK, response.Success(RemoveUserResponse{Email: email}, nil))
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

func toUserResponse(u *AllowedUser) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Role:      u.Role,
		AddedBy:   u.AddedBy,
		UpdatedBy: u.UpdatedBy,
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: u.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
