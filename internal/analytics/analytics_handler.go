package analytics

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
		logger:  zap.L().Named("analytics_handler"),
	}
}

func (h *Handler) Overview(c *gin.Context) {
	summary, err := h.service.Overview(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to build overview")
		return
	}

	c.JSON(http.StatusOK, response.Success(summary, nil))
}

func (h *Handler) Grouped(c *gin.Context) {
	grouped, err := h.service.Grouped(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to group attendance")
		return
	}

	c.JSON(http.StatusOK, response.Success(grouped, nil))
}

func (h *Handler) Detailed(c *gin.Context) {
	serviceName := c.Param("serviceName")

	summary, err := h.service.Detailed(c.Request.Context(), serviceName)
	if err != nil {
		h.writeServiceError(c, err, "failed to build service analytics")
		return
	}

	c.JSON(http.StatusOK, response.Success(summary, nil))
}

func (h *Handler) writeServiceError(c *gin.Context, err error, msg string) {
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)
	logger.Error(msg, zap.Error(err))
	appErr := apperror.ToHTTP(err)
	c.JSON(appErr.HTTPStatus, response.Error(appErr))
}
